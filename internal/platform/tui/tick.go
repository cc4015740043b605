// Package tui provides the Bubble Tea integration for the runner.
// It owns the frame loop: every tick it measures the real wall-clock
// delta since the previous tick, feeds it to the game clock, polls the
// input sources and steps the simulation exactly once.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. It carries the send time so the
// handler can measure the actual inter-frame delta, which under load is
// longer than the requested interval.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
