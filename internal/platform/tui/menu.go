package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is a launcher entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// String returns the label shown in the launcher.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceQuit}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the launcher shown before a game and between games.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	highScore int
	selected  MenuChoice
	quitting  bool
}

// NewMenuModel creates a launcher. highScore is shown under the title
// when positive.
func NewMenuModel(width, height, highScore int) MenuModel {
	return MenuModel{width: width, height: height, highScore: highScore}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = menuChoices[m.cursor]
		if m.selected == ChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(m.height/3, 0)))
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n")
	if m.highScore > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("best: %d", m.highScore)), m.width))
	}
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		line := "  " + c.String()
		if i == m.cursor {
			line = selectedStyle.Render("> " + c.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("↑/↓: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice { return m.selected }

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }
