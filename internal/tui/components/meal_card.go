package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/mealfinder/internal/domain"
	"github.com/mmcdole/mealfinder/internal/tui/styles"
)

const (
	// DefaultExcerptLength is the instructions preview length in runes
	DefaultExcerptLength = 100

	// ExcerptEllipsis is appended to every instructions excerpt
	ExcerptEllipsis = "..."
)

// Excerpt returns the first n runes of instructions followed by "...".
// The ellipsis is always appended, even when nothing was cut.
func Excerpt(instructions string, n int) string {
	runes := []rune(instructions)
	if n >= 0 && len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + ExcerptEllipsis
}

// MealCard renders one search result
type MealCard struct {
	Meal          domain.Meal
	MatchedRunes  []int // Rune positions in Meal.Name to highlight
	Selected      bool
	ExcerptLength int
}

// View renders the card at the given outer width
func (c MealCard) View(width int) string {
	style := styles.CardStyle
	if c.Selected {
		style = styles.CardSelectedStyle
	}
	// Border (2) + padding (2)
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var lines []string

	nameStyle := styles.TitleStyle
	if c.Selected {
		nameStyle = nameStyle.Foreground(styles.Saffron)
	}
	lines = append(lines, styles.RenderHighlighted(styles.Truncate(c.Meal.Name, inner), c.MatchedRunes, nameStyle))

	if sub := c.Meal.Subtitle(); sub != "" {
		lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(sub, inner)))
	}

	lines = append(lines, styles.DimStyle.Render(styles.Truncate(c.Meal.ThumbnailURL, inner)))

	// Newlines in instructions would break the card layout
	excerpt := strings.Join(strings.Fields(Excerpt(c.Meal.Instructions, c.ExcerptLength)), " ")
	lines = append(lines, styles.WordWrap(excerpt, inner))

	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Height returns the rendered height of the card at the given width
func (c MealCard) Height(width int) int {
	return lipgloss.Height(c.View(width))
}
