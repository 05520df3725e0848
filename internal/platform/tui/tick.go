// Package tui provides the Bubble Tea integration for Breakout.
// It handles the terminal UI loop, input mapping, rendering into a
// character screen and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one fixed simulation step. Gen identifies the game
// model that scheduled it so stale ticks from a finished game are dropped.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick after one step at
// the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
