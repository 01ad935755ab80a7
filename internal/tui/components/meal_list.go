package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mmcdole/mealfinder/internal/domain"
	"github.com/mmcdole/mealfinder/internal/search"
	"github.com/mmcdole/mealfinder/internal/tui/styles"
)

// MealList is a scrollable list of meal cards with a cursor and an
// optional fuzzy filter over meal names
type MealList struct {
	meals      []domain.Meal  // unfiltered, in server order
	matches    []search.Match // visible subset
	filter     string
	cursor     int
	excerptLen int

	width    int
	height   int
	viewport viewport.Model
	starts   []int // first content line of each visible card
	heights  []int // rendered height of each visible card
}

// NewMealList creates an empty list
func NewMealList(excerptLen int) MealList {
	return MealList{
		excerptLen: excerptLen,
		viewport:   viewport.New(0, 0),
	}
}

// SetMeals replaces the list contents and resets the cursor.
// The current filter is kept and re-applied.
func (l *MealList) SetMeals(meals []domain.Meal) {
	l.meals = meals
	l.cursor = 0
	l.applyFilter()
}

// SetFilter narrows visible meals to those matching query
func (l *MealList) SetFilter(query string) {
	if query == l.filter {
		return
	}
	var selectedID string
	if m, ok := l.Selected(); ok {
		selectedID = m.ID
	}
	l.filter = query
	l.applyFilter()

	// Keep the selection on the same meal when it survived the filter
	l.cursor = 0
	for i, match := range l.matches {
		if match.Meal.ID == selectedID {
			l.cursor = i
			break
		}
	}
	l.refresh()
}

// Filter returns the active filter query
func (l MealList) Filter() string {
	return l.filter
}

// IsFiltered returns true if a non-blank filter is active
func (l MealList) IsFiltered() bool {
	return strings.TrimSpace(l.filter) != ""
}

func (l *MealList) applyFilter() {
	l.matches = search.Filter(l.filter, l.meals)
	if l.cursor >= len(l.matches) {
		l.cursor = max(len(l.matches)-1, 0)
	}
	l.refresh()
}

// Len returns the number of visible meals
func (l MealList) Len() int {
	return len(l.matches)
}

// Total returns the number of meals before filtering
func (l MealList) Total() int {
	return len(l.meals)
}

// Cursor returns the cursor position within the visible meals
func (l MealList) Cursor() int {
	return l.cursor
}

// Selected returns the meal under the cursor
func (l MealList) Selected() (domain.Meal, bool) {
	if l.cursor < 0 || l.cursor >= len(l.matches) {
		return domain.Meal{}, false
	}
	return l.matches[l.cursor].Meal, true
}

// SetSize updates the component dimensions
func (l *MealList) SetSize(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	l.width = width
	l.height = height
	l.viewport.Width = width
	l.viewport.Height = height
	l.refresh()
}

// MoveUp moves the cursor up one card
func (l *MealList) MoveUp() {
	l.moveTo(l.cursor - 1)
}

// MoveDown moves the cursor down one card
func (l *MealList) MoveDown() {
	l.moveTo(l.cursor + 1)
}

// PageUp moves the cursor up by roughly one screen
func (l *MealList) PageUp() {
	l.moveTo(l.cursor - l.cardsPerPage())
}

// PageDown moves the cursor down by roughly one screen
func (l *MealList) PageDown() {
	l.moveTo(l.cursor + l.cardsPerPage())
}

// Top moves the cursor to the first card
func (l *MealList) Top() {
	l.moveTo(0)
}

// Bottom moves the cursor to the last card
func (l *MealList) Bottom() {
	l.moveTo(len(l.matches) - 1)
}

func (l *MealList) moveTo(idx int) {
	if len(l.matches) == 0 {
		return
	}
	idx = max(0, min(idx, len(l.matches)-1))
	if idx == l.cursor {
		return
	}
	l.cursor = idx
	l.refresh()
}

func (l MealList) cardsPerPage() int {
	if len(l.heights) == 0 || l.heights[0] == 0 {
		return 1
	}
	return max(l.height/l.heights[0], 1)
}

// refresh re-renders every card into the viewport and scrolls so the
// selected card is fully visible
func (l *MealList) refresh() {
	if l.width <= 0 || l.height <= 0 {
		return
	}

	l.starts = l.starts[:0]
	l.heights = l.heights[:0]

	var b strings.Builder
	line := 0
	for i, match := range l.matches {
		card := MealCard{
			Meal:          match.Meal,
			MatchedRunes:  match.MatchedRunes,
			Selected:      i == l.cursor,
			ExcerptLength: l.excerptLen,
		}
		rendered := card.View(l.width)
		h := strings.Count(rendered, "\n") + 1

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rendered)
		l.starts = append(l.starts, line)
		l.heights = append(l.heights, h)
		line += h
	}
	l.viewport.SetContent(b.String())

	if len(l.starts) == 0 {
		l.viewport.SetYOffset(0)
		return
	}
	top := l.starts[l.cursor]
	bottom := top + l.heights[l.cursor]
	switch {
	case top < l.viewport.YOffset:
		l.viewport.SetYOffset(top)
	case bottom > l.viewport.YOffset+l.height:
		l.viewport.SetYOffset(bottom - l.height)
	}
}

// Position returns a "3/10" style indicator, noting the filtered total
func (l MealList) Position() string {
	if len(l.matches) == 0 {
		return ""
	}
	pos := fmt.Sprintf("%d/%d", l.cursor+1, len(l.matches))
	if l.IsFiltered() {
		pos += fmt.Sprintf(" (of %d)", len(l.meals))
	}
	return pos
}

// View renders the visible window of cards
func (l MealList) View() string {
	if len(l.matches) == 0 {
		if l.IsFiltered() {
			return styles.DimStyle.Render(fmt.Sprintf("No meals match %q", l.filter))
		}
		return ""
	}
	return l.viewport.View()
}
