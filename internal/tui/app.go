package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/mealfinder/internal/domain"
	"github.com/mmcdole/mealfinder/internal/tui/components"
	"github.com/mmcdole/mealfinder/internal/tui/styles"
)

// Focus identifies which part of the screen receives key presses
type Focus int

const (
	FocusInput Focus = iota
	FocusList
	FocusFilter
)

// Layout proportions
const (
	DetailPercent  = 45 // Recipe pane share of the width when shown
	MinDetailWidth = 30
	MinListWidth   = 30

	// Title line + search bar + blank line
	HeaderHeight = 3
)

const statusTimeout = 3 * time.Second

// Searcher is the search session as seen by the UI
type Searcher interface {
	Search(query string)
	State() domain.SessionState
	Subscribe(observer domain.StateObserver) (unsubscribe func())
}

// Opener launches external viewers for images and links
type Opener interface {
	OpenImage(url string) error
	OpenURL(url string) error
}

// Options configures the model
type Options struct {
	ExcerptLength int
	Logger        *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services
	session     Searcher
	opener      Opener
	logger      *slog.Logger
	stateCh     chan domain.SessionState
	unsubscribe func()

	// Last session state read by the UI
	State domain.SessionState

	// UI Components
	SearchBar components.SearchBar
	FilterBar components.SearchBar
	List      components.MealList
	Inspector components.Inspector
	Spinner   spinner.Model
	Help      help.Model

	// Dimensions
	Width  int
	Height int
	Ready  bool

	// UI state
	Focus       Focus
	ShowDetail  bool
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model subscribed to session
func NewModel(session Searcher, opener Opener, opts Options) Model {
	if opts.ExcerptLength <= 0 {
		opts.ExcerptLength = components.DefaultExcerptLength
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ch := make(chan domain.SessionState, stateBufferSize)
	unsubscribe := session.Subscribe(NewChannelObserver(ch))

	searchBar := components.NewQueryBar()
	searchBar.Focus()

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	m := Model{
		session:     session,
		opener:      opener,
		logger:      logger,
		stateCh:     ch,
		unsubscribe: unsubscribe,
		SearchBar:   searchBar,
		FilterBar:   components.NewFilterBar(),
		List:        components.NewMealList(opts.ExcerptLength),
		Inspector:   components.NewInspector(),
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.SpinnerStyle),
		),
		Help:  h,
		Focus: FocusInput,
	}
	m.applyState(session.State())
	return m
}

// Close detaches the model from the session
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, WaitForStateCmd(m.stateCh)}
	if m.State.Loading {
		cmds = append(cmds, m.Spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case StateChangedMsg:
		// The session is authoritative; msg.State may already be outdated
		cmd := m.applyState(m.session.State())
		return m, tea.Batch(cmd, WaitForStateCmd(m.stateCh))

	case spinner.TickMsg:
		if !m.State.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case OpenedMsg:
		return m.setStatus("Opened "+msg.What, false)

	case ErrMsg:
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		return m.setStatus(msg.Error(), true)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		m.updateLayout()
		return m, nil
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	switch m.Focus {
	case FocusInput:
		m.SearchBar, cmd = m.SearchBar.Update(msg)
	case FocusFilter:
		m.FilterBar, cmd = m.FilterBar.Update(msg)
	}
	return m, cmd
}

// applyState adopts a session snapshot and returns the spinner tick when a
// search just started
func (m *Model) applyState(state domain.SessionState) tea.Cmd {
	wasLoading := m.State.Loading
	m.State = state
	m.List.SetMeals(state.Results)
	m.syncInspector()

	if state.Loading && !wasLoading {
		return m.Spinner.Tick
	}
	return nil
}

// handleKeyMsg routes key presses by focus
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.Focus {
	case FocusInput:
		m, cmd = m.handleInputKey(msg)
	case FocusFilter:
		m, cmd = m.handleFilterKey(msg)
	default:
		m, cmd = m.handleListKey(msg)
	}
	m.updateLayout()
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Search):
		return m.startSearch(m.SearchBar.Value())

	case key.Matches(msg, Keys.Escape), msg.String() == "down":
		if m.List.Len() > 0 {
			m.focusList()
		}
		return m, nil

	case key.Matches(msg, Keys.ToggleDetail):
		m.ShowDetail = !m.ShowDetail
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Submit):
		m.focusList()
		return m, nil

	case key.Matches(msg, Keys.Escape):
		m.FilterBar.Reset()
		m.List.SetFilter("")
		m.syncInspector()
		m.focusList()
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterBar, cmd = m.FilterBar.Update(msg)
	m.List.SetFilter(m.FilterBar.Value())
	m.syncInspector()
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Up):
		m.List.MoveUp()
	case key.Matches(msg, Keys.Down):
		m.List.MoveDown()
	case key.Matches(msg, Keys.PageUp):
		m.List.PageUp()
	case key.Matches(msg, Keys.PageDown):
		m.List.PageDown()
	case key.Matches(msg, Keys.Home):
		m.List.Top()
	case key.Matches(msg, Keys.End):
		m.List.Bottom()

	case key.Matches(msg, Keys.DetailUp):
		m.Inspector.ScrollUp(m.bodyHeight() / 2)
	case key.Matches(msg, Keys.DetailDown):
		m.Inspector.ScrollDown(m.bodyHeight() / 2)

	case key.Matches(msg, Keys.Escape):
		if m.List.IsFiltered() {
			m.FilterBar.Reset()
			m.List.SetFilter("")
			break
		}
		return m, m.focusInput()

	case key.Matches(msg, Keys.FocusSearch):
		return m, m.focusInput()

	case key.Matches(msg, Keys.Filter):
		if m.List.Total() == 0 {
			return m, nil
		}
		m.Focus = FocusFilter
		m.FilterBar.SetValue(m.List.Filter())
		return m, m.FilterBar.Focus()

	case key.Matches(msg, Keys.ToggleDetail):
		m.ShowDetail = !m.ShowDetail

	case key.Matches(msg, Keys.OpenImage):
		if meal, ok := m.List.Selected(); ok {
			return m, OpenImageCmd(m.opener, meal)
		}

	case key.Matches(msg, Keys.OpenVideo):
		if meal, ok := m.List.Selected(); ok {
			if meal.YouTubeURL == "" {
				return m.setStatus("No video for "+meal.Name, true)
			}
			return m, OpenURLCmd(m.opener, "video", meal.YouTubeURL)
		}

	case key.Matches(msg, Keys.OpenSource):
		if meal, ok := m.List.Selected(); ok {
			if meal.SourceURL == "" {
				return m.setStatus("No source link for "+meal.Name, true)
			}
			return m, OpenURLCmd(m.opener, "source", meal.SourceURL)
		}

	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	}

	m.syncInspector()
	return m, nil
}

// startSearch forwards the query as typed and adopts the reset state
// synchronously, so the spinner shows before the request returns
func (m Model) startSearch(query string) (Model, tea.Cmd) {
	m.logger.Debug("search submitted", "query", query)
	m.session.Search(query)

	m.FilterBar.Reset()
	m.List.SetFilter("")
	return m, m.applyState(m.session.State())
}

func (m *Model) focusList() {
	m.SearchBar.Blur()
	m.FilterBar.Blur()
	m.Focus = FocusList
}

func (m *Model) focusInput() tea.Cmd {
	m.FilterBar.Blur()
	m.Focus = FocusInput
	return m.SearchBar.Focus()
}

func (m *Model) syncInspector() {
	if meal, ok := m.List.Selected(); ok {
		m.Inspector.SetMeal(&meal)
		return
	}
	m.Inspector.SetMeal(nil)
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	m.updateLayout()
	return m, ClearStatusCmd(statusTimeout)
}

// showFilterLine reports whether the filter bar takes a line in the header
func (m Model) showFilterLine() bool {
	return m.Focus == FocusFilter || m.List.IsFiltered()
}

// bodyHeight returns the rows left for results between header and footer
func (m Model) bodyHeight() int {
	h := m.Height - HeaderHeight - lipgloss.Height(m.renderFooter())
	if m.showFilterLine() {
		h--
	}
	return max(h, 1)
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.SearchBar.SetWidth(m.Width - 2)
	m.FilterBar.SetWidth(m.Width - 2)
	m.Help.Width = m.Width

	bodyHeight := m.bodyHeight()
	if !m.ShowDetail {
		m.List.SetSize(m.Width, bodyHeight)
		return
	}

	detailWidth := m.detailWidth()
	listWidth := max(m.Width-detailWidth, MinListWidth)
	m.List.SetSize(listWidth, bodyHeight)
	m.Inspector.SetSize(detailWidth, bodyHeight)
}
