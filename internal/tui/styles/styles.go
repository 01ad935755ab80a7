package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Saffron    = lipgloss.Color("#E5A00D")
	Cornsilk   = lipgloss.Color("#FFF8DC")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Saffron)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Saffron)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	LinkStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Underline(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Cornsilk).
			Bold(true)
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Saffron).
				Padding(0, 1)
)

// Input styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(Saffron).
			Bold(true)

	InputTextStyle = lipgloss.NewStyle().
			Foreground(White)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Saffron)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Saffron)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Saffron).
				Bold(true)
)

// Match highlight styles for filtered results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Saffron).
				Bold(true)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Saffron)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		if width > len(runes) {
			return s
		}
		return string(runes[:width])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// WordWrap wraps text on word boundaries to fit width
func WordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for p, para := range strings.Split(text, "\n") {
		if p > 0 {
			result.WriteString("\n")
		}
		lineLen := 0
		for i, word := range strings.Fields(para) {
			wordLen := lipgloss.Width(word)

			if lineLen+wordLen+1 > width && lineLen > 0 {
				result.WriteString("\n")
				lineLen = 0
			}

			if i > 0 && lineLen > 0 {
				result.WriteString(" ")
				lineLen++
			}

			result.WriteString(word)
			lineLen += wordLen
		}
	}
	return result.String()
}

// RenderHighlighted renders text with the runes at the given indexes emphasized
func RenderHighlighted(text string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(text)
	}

	hits := make(map[int]bool, len(matched))
	for _, idx := range matched {
		hits[idx] = true
	}
	highlight := MatchHighlightStyle.Inherit(base)

	var b strings.Builder
	for i, r := range []rune(text) {
		if hits[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
