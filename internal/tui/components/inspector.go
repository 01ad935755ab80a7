package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/mealfinder/internal/domain"
	"github.com/mmcdole/mealfinder/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// inspectorContent holds the two-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable
}

// Inspector displays the full details of the selected meal
type Inspector struct {
	meal       *domain.Meal
	width      int
	height     int
	offset     int // scroll offset
	maxVisible int // max visible lines
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetMeal sets the meal to display. Scroll resets when the meal changes.
func (i *Inspector) SetMeal(meal *domain.Meal) {
	if i.meal != nil && meal != nil && i.meal.ID == meal.ID {
		i.meal = meal
		return
	}
	i.meal = meal
	i.offset = 0
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	// Reserve space for border, scroll indicators, title and blank line
	i.maxVisible = height - InspectorBorderHeight - InspectorScrollIndicators - 2
	if i.maxVisible < 1 {
		i.maxVisible = 1
	}
}

// HasMeal returns true if there is a meal to display
func (i Inspector) HasMeal() bool {
	return i.meal != nil
}

// ScrollDown scrolls the body down by n lines
func (i *Inspector) ScrollDown(n int) {
	i.offset += n
}

// ScrollUp scrolls the body up by n lines
func (i *Inspector) ScrollUp(n int) {
	i.offset -= n
	if i.offset < 0 {
		i.offset = 0
	}
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder

	// Border takes 2 chars (1 each side), leave 1 char safety margin
	contentWidth := i.width - 3
	if contentWidth < 10 {
		contentWidth = 10
	}
	content := i.render(contentWidth)

	titleLine := styles.AccentStyle.Render(styles.Truncate("Recipe", contentWidth))

	headerLines := splitLines(content.header)
	bodyLines := splitLines(content.body)

	availableForBody := i.maxVisible - len(headerLines)
	if availableForBody < 1 {
		availableForBody = 1
	}

	// Clamp body scroll offset
	maxOffset := len(bodyLines) - availableForBody
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := min(i.offset, maxOffset)

	end := min(offset+availableForBody, len(bodyLines))
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(bodyLines) {
		down = styles.DimStyle.Render("↓ more")
	}

	parts := []string{titleLine, ""}
	if content.header != "" {
		parts = append(parts, strings.Join(headerLines, "\n"))
	}
	parts = append(parts, up)
	if len(visibleBody) > 0 {
		parts = append(parts, strings.Join(visibleBody, "\n"))
	}
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)

	// Subtract frame (border) size so total rendered size equals i.width x i.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(strings.Join(parts, "\n"))
}

func (i Inspector) render(width int) inspectorContent {
	if i.meal == nil {
		return inspectorContent{body: styles.DimStyle.Render("No meal selected")}
	}
	return inspectorContent{
		header: renderMealHeader(*i.meal, width),
		body:   renderMealBody(*i.meal, width),
	}
}

func renderMealHeader(meal domain.Meal, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(meal.Name, width)))
	if sub := meal.Subtitle(); sub != "" {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(sub, width)))
	}
	if len(meal.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(styles.Truncate(strings.Join(meal.Tags, ", "), width)))
	}
	return b.String()
}

func renderMealBody(meal domain.Meal, width int) string {
	var b strings.Builder

	if len(meal.Ingredients) > 0 {
		b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("Ingredients (%d)", len(meal.Ingredients))))
		b.WriteString("\n")
		for _, ing := range meal.Ingredients {
			b.WriteString(styles.WordWrap("• "+ing.String(), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HeaderStyle.Render("Instructions"))
	b.WriteString("\n")
	b.WriteString(styles.WordWrap(strings.ReplaceAll(meal.Instructions, "\r\n", "\n"), width))
	b.WriteString("\n")

	var links []string
	if meal.YouTubeURL != "" {
		links = append(links, "Video:  "+meal.YouTubeURL)
	}
	if meal.SourceURL != "" {
		links = append(links, "Source: "+meal.SourceURL)
	}
	links = append(links, "Image:  "+meal.ThumbnailURL)

	b.WriteString("\n")
	for _, link := range links {
		b.WriteString(styles.DimStyle.Render(styles.Truncate(link, width)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
