package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/mealfinder/internal/tui/styles"
)

// SearchBar is a single-line text input with a styled prompt. The app uses
// one for the recipe query and one for the result filter.
type SearchBar struct {
	input textinput.Model
	width int
}

// NewSearchBar creates a search bar with the given prompt and placeholder
func NewSearchBar(prompt, placeholder string, promptStyle lipgloss.Style) SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = styles.InputTextStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// NewQueryBar creates the search bar used for recipe queries
func NewQueryBar() SearchBar {
	return NewSearchBar("Search: ", "dish name, e.g. Arrabiata", styles.PromptStyle)
}

// NewFilterBar creates the search bar used to filter loaded results
func NewFilterBar() SearchBar {
	return NewSearchBar("/", "filter results", styles.FilterPromptStyle)
}

// Focus focuses the input and returns the cursor blink command
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus from the input
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused returns whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current input text, untrimmed
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the input text
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// Reset clears the input text
func (s *SearchBar) Reset() {
	s.input.Reset()
}

// SetWidth updates the visible width of the input
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	inner := width - lipgloss.Width(s.input.Prompt) - 1
	if inner < 10 {
		inner = 10
	}
	s.input.Width = inner
}

// Update forwards messages to the underlying text input
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s SearchBar) View() string {
	return s.input.View()
}
