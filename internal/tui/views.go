package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/mealfinder/internal/tui/styles"
)

// Body messages for states without results
const (
	NoResultsText = "No results found"
	HintText      = "Type a dish name and press enter to search TheMealDB"
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	bodyHeight := m.bodyHeight()
	body := lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.renderBody())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

// renderHeader renders the title line, the search bar and, when filtering,
// the filter bar
func (m Model) renderHeader() string {
	title := styles.HeaderStyle.Render("mealfinder")
	if pos := m.List.Position(); pos != "" {
		info := styles.DimStyle.Render(pos)
		gap := m.Width - lipgloss.Width(title) - lipgloss.Width(info)
		if gap > 0 {
			title = title + styles.Pad("", gap) + info
		}
	}

	lines := []string{title, m.SearchBar.View(), ""}
	if m.showFilterLine() {
		lines = append(lines, m.FilterBar.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderBody renders the area below the header according to session state
func (m Model) renderBody() string {
	switch {
	case m.State.Loading:
		return fmt.Sprintf("%s Searching for %q...", m.Spinner.View(), m.State.Query)

	case m.State.Failed():
		return RenderError(m.State.ErrorMessage, m.Width)

	case m.State.Empty():
		return styles.DimStyle.Render(NoResultsText)

	case m.State.Results == nil:
		return styles.DimStyle.Render(HintText)
	}

	list := m.List.View()
	if !m.ShowDetail {
		return list
	}

	list = lipgloss.NewStyle().Width(max(m.Width-m.detailWidth(), MinListWidth)).Render(list)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, m.Inspector.View())
}

func (m Model) detailWidth() int {
	return max(m.Width*DetailPercent/100, MinDetailWidth)
}

// renderFooter renders the status message or the key help
func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		style := styles.SuccessStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		return style.Render(styles.Truncate(m.StatusMsg, max(m.Width, 1)))
	}
	return m.Help.View(focusHelp{keys: Keys, focus: m.Focus})
}

// RenderError renders an error message
func RenderError(msg string, width int) string {
	return styles.ErrorStyle.Render("Error: " + styles.WordWrap(msg, width-8))
}
