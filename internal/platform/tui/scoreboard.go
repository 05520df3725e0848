package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	maxScores     = 100 // Runs loaded per tab
	tableMinWidth = 64  // Narrower tables drop the player column
	tabNameWidth  = 10
	chromeHeight  = 11 // Rows used by title, tabs, summary, borders and help
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	placeholderStyle = dimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTab, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PrevTab, k.NextTab}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextTab: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next level")),
		PrevTab: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev level")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs per level. The first tab ranks
// runs across all levels.
type ScoreboardModel struct {
	store *storage.Store
	tabs  []string // Level names; "" is the all-levels tab
	tab   int

	runs    []storage.RunEntry
	stats   map[string]*storage.LevelStats
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
	standalone    bool // Back quits the program
}

// NewScoreboardModel creates a scoreboard over the given level names.
func NewScoreboardModel(store *storage.Store, levels []string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		tabs:   append([]string{""}, levels...),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) tabTitle(i int) string {
	if m.tabs[i] == "" {
		return "All levels"
	}
	return m.tabs[i]
}

func (m ScoreboardModel) wide() bool {
	return m.width-4 >= tableMinWidth
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 10},
		{Title: "Result", Width: 6},
	}
	if m.wide() {
		columns = append(columns, table.Column{Title: "Player", Width: 10})
	}
	columns = append(columns, table.Column{Title: "Date", Width: 12})

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the runs of the selected tab and the per-level stats.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.TopRuns(m.tabs[m.tab], maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.AllLevelStats()
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	wide := m.wide()
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		row := table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(r.Score), r.Level, result}
		if wide {
			row = append(row, r.Player)
		}
		rows[i] = append(row, r.CreatedAt.Format("Jan 02 15:04"))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	sections := []string{
		centerText(titleStyle.Render("HIGH SCORES"), m.width),
		"",
		centerText(m.tabBar(), m.width),
		centerText(dimStyle.Render(m.summary()), m.width),
		centerText(borderStyle.Render(m.body()), m.width),
		dimStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(sections, "\n")
}

// tabBar lists the level tabs, falling back to the selected one when
// they do not fit.
func (m ScoreboardModel) tabBar() string {
	tabs := make([]string, len(m.tabs))
	for i := range m.tabs {
		name := truncate(m.tabTitle(i), tabNameWidth)
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}
	bar := strings.Join(tabs, " ")
	if lipgloss.Width(bar) > m.width-4 {
		bar = activeTabStyle.Render(fmt.Sprintf("< %s >", m.tabTitle(m.tab)))
	}
	return bar
}

// summary describes the selected tab: totals over every level for the
// first tab, that level's record otherwise.
func (m ScoreboardModel) summary() string {
	var total storage.LevelStats
	if name := m.tabs[m.tab]; name != "" {
		if s, ok := m.stats[name]; ok {
			total = *s
		}
	} else {
		var sum float64
		for _, s := range m.stats {
			total.Runs += s.Runs
			total.Wins += s.Wins
			total.HighScore = max(total.HighScore, s.HighScore)
			sum += s.AvgScore * float64(s.Runs)
		}
		if total.Runs > 0 {
			total.AvgScore = sum / float64(total.Runs)
		}
	}
	if total.Runs == 0 {
		return "no runs"
	}
	return fmt.Sprintf("%d runs  ·  %d won  ·  best %d  ·  avg %.0f",
		total.Runs, total.Wins, total.HighScore, total.AvgScore)
}

func (m ScoreboardModel) body() string {
	if m.loadErr != nil {
		return placeholderStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return placeholderStyle.Render("No runs recorded yet.\nClear a level to set a high score!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the user asked to return to the launcher.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, levels []string, width, height int) error {
	model := NewScoreboardModel(store, levels, width, height)
	model.standalone = true

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
