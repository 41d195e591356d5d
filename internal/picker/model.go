// Package picker implements the interactive launcher TUI.
package picker

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runger/lume/internal/result"
)

// debounceInterval is the delay after the last keystroke before a search
// is dispatched.
const debounceInterval = 100 * time.Millisecond

// pickerState represents the current state of the picker's state machine.
type pickerState int

const (
	stateLoading   pickerState = iota // Search in flight, nothing shown yet
	stateLoaded                       // Results on screen
	stateEmpty                        // Search completed with 0 results
	stateCancelled                    // User cancelled (Esc / Ctrl+C)
)

// Searcher dispatches a query and delivers results asynchronously. Stale
// deliveries are suppressed by the searcher, not the picker.
type Searcher interface {
	Search(ctx context.Context, query string, callback func([]result.SearchResult))
}

// resultsMsg carries a delivered result set into the Bubble Tea loop.
type resultsMsg struct {
	results []result.SearchResult
}

// debounceMsg fires after the debounce timer expires.
type debounceMsg struct {
	id uint64 // Must match current debounceID to be accepted
}

// initMsg is sent by Init() to trigger the first search via Update(),
// ensuring state mutations are visible to the Bubble Tea runtime.
type initMsg struct{}

// Model is the Bubble Tea model for the launcher.
type Model struct {
	input    textinput.Model
	searcher Searcher

	state     pickerState
	results   []result.SearchResult
	selection int // Index into results; -1 when empty

	width  int // Terminal width
	height int // Terminal height

	// choice holds the selected result after the user presses Enter.
	choice    *result.SearchResult
	cancelled bool

	// resultsCh carries deliveries from the searcher's callback into the
	// Bubble Tea loop. Shared across Model copies.
	resultsCh chan []result.SearchResult

	// debounceID tracks the latest debounce timer; only a matching
	// debounceMsg will trigger a search.
	debounceID uint64
}

// NewModel creates a new picker Model.
func NewModel(searcher Searcher) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search"
	ti.Focus()

	return Model{
		input:     ti,
		searcher:  searcher,
		state:     stateLoading,
		selection: -1,
		resultsCh: make(chan []result.SearchResult, 8),
	}
}

// Choice returns the selected result, or nil if the picker was cancelled
// or nothing was selected.
func (m Model) Choice() *result.SearchResult {
	return m.choice
}

// IsCancelled reports whether the user dismissed the picker.
func (m Model) IsCancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		func() tea.Msg { return initMsg{} },
		m.waitForResults(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case resultsMsg:
		m.results = msg.results
		if len(m.results) == 0 {
			m.state = stateEmpty
			m.selection = -1
		} else {
			m.state = stateLoaded
			m.selection = 0
		}
		return m, m.waitForResults()

	case debounceMsg:
		return m.handleDebounce(msg)

	case initMsg:
		m.startSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.state = stateCancelled
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.selection >= 0 && m.selection < len(m.results) {
			chosen := m.results[m.selection]
			m.choice = &chosen
		}
		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		if m.selection > 0 {
			m.selection--
		}
		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if m.selection < len(m.results)-1 {
			m.selection++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.startDebounce())
	}
	return m, cmd
}

// handleDebounce fires the search if the debounce timer is still current.
func (m Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.debounceID {
		return m, nil // Stale debounce timer; ignore.
	}
	m.startSearch()
	return m, nil
}

// startDebounce increments the debounce counter and returns a tea.Tick
// command that fires after debounceInterval.
func (m *Model) startDebounce() tea.Cmd {
	m.debounceID++
	id := m.debounceID
	return tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{id: id}
	})
}

// startSearch dispatches the current query. Superseded searches never
// deliver, so no request bookkeeping is needed here.
func (m *Model) startSearch() {
	ch := m.resultsCh
	m.searcher.Search(context.Background(), m.input.Value(), func(rs []result.SearchResult) {
		ch <- rs
	})
}

// waitForResults blocks on the delivery channel and turns the next result
// set into a message. Re-armed after every resultsMsg.
func (m Model) waitForResults() tea.Cmd {
	ch := m.resultsCh
	return func() tea.Msg {
		return resultsMsg{results: <-ch}
	}
}

// listHeight returns the number of visible list rows (terminal height
// minus the query line and status line).
func (m Model) listHeight() int {
	const chrome = 2
	h := m.height - chrome
	if h < 1 {
		h = 10 // Sensible default before first WindowSizeMsg
	}
	return h
}

// --- View rendering ---

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteRune('\n')
	b.WriteString(m.viewContent())

	return b.String()
}

// viewContent renders the result list or a status message.
func (m Model) viewContent() string {
	switch m.state {
	case stateLoading:
		return dimStyle.Render("Loading...")

	case stateEmpty:
		return dimStyle.Render("No matches")

	case stateCancelled:
		return dimStyle.Render("Cancelled")

	case stateLoaded:
		return m.viewList()

	default:
		return ""
	}
}

// viewList renders the result list with selection marker.
func (m Model) viewList() string {
	var b strings.Builder
	maxItems := m.listHeight()
	for i, res := range m.results {
		if i >= maxItems {
			break
		}

		line := m.renderRow(res, i == m.selection)
		b.WriteString(line)
		if i < len(m.results)-1 && i < maxItems-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// renderRow renders a single result row: marker, title, badge, subtitle.
func (m Model) renderRow(res result.SearchResult, selected bool) string {
	title := ValidateUTF8(StripANSI(res.DisplayName()))
	if m.width > 4 {
		title = MiddleTruncate(title, m.width-4)
	}

	marker := "  "
	style := normalStyle
	if selected {
		marker = "> "
		style = selectedStyle
	}

	row := style.Render(marker + title)
	if badge := kindBadge(res); badge != "" {
		row += " " + badgeStyle.Render(badge)
	}
	if sub := subtitle(res); sub != "" && m.width > 20 {
		row += " " + subtitleStyle.Render(MiddleTruncate(StripANSI(sub), m.width/3))
	}
	return row
}

// kindBadge returns a short tag describing the result's origin.
func kindBadge(res result.SearchResult) string {
	if res.IsRecent {
		return "[recent]"
	}
	switch res.Kind {
	case result.KindCatalogEntry:
		if res.Deprecated {
			return "[package, deprecated]"
		}
		return "[package]"
	case result.KindHistoryCommand:
		return "[command]"
	case result.KindURLTarget:
		return "[url]"
	case result.KindFileSystemEntry:
		if res.IsDirectory {
			return "[dir]"
		}
		return "[file]"
	}
	return ""
}

// subtitle returns the secondary line text for a result.
func subtitle(res result.SearchResult) string {
	switch res.Kind {
	case result.KindInstalledProgram:
		if res.Description != "" {
			return res.Description
		}
		return res.Path
	case result.KindCatalogEntry:
		return res.Description
	case result.KindHistoryCommand:
		return res.Subtitle
	case result.KindURLTarget:
		return res.URL
	case result.KindFileSystemEntry:
		return res.Path
	}
	return ""
}
