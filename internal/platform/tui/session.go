package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// page is the screen a session is showing.
type page int

const (
	pageMenu page = iota
	pageGame
	pageScores
)

// SessionModel manages the full session flow: launcher -> game or
// scoreboard -> launcher. It is used for local play and for every SSH
// session.
type SessionModel struct {
	opts       Options
	levelNames []string
	current    page
	gen        int
	menu       MenuModel
	game       *GameModel
	scores     *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session. opts is the template for every game
// started from the launcher; levelNames label the scoreboard tabs.
func NewSessionModel(opts Options, levelNames []string) SessionModel {
	m := SessionModel{opts: opts, levelNames: levelNames}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.opts.Store != nil {
		if runs, err := m.opts.Store.TopRuns("", 1); err == nil && len(runs) > 0 {
			best = runs[0].Score
		}
	}
	return NewMenuModel(m.opts.Width, m.opts.Height, best)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.current {
	case pageGame:
		return m.updateGame(msg)
	case pageScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		m.gen++
		game := NewGameModel(m.opts, m.gen)
		m.game = &game
		m.current = pageGame
		return m, game.Init()
	case ChoiceScores:
		scores := NewScoreboardModel(m.opts.Store, m.levelNames, m.opts.Width, m.opts.Height)
		m.scores = &scores
		m.current = pageScores
		return m, scores.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = pageMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current page.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case pageGame:
		return m.game.View()
	case pageScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session in the alternate screen.
func Run(opts Options, levelNames []string) error {
	_, err := tea.NewProgram(NewSessionModel(opts, levelNames), tea.WithAltScreen()).Run()
	return err
}
