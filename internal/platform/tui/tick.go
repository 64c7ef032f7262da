// Package tui provides the Bubble Tea front end for the slicer.
// It runs the frame loop, maps keys and mouse motion to game input, and
// serves the same model to remote players over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameGap caps the elapsed time fed to the game after a stall.
const maxFrameGap = 250 * time.Millisecond

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameElapsed returns the time between two ticks, clamped to [0, maxFrameGap].
// The first frame has no previous tick and counts as one interval.
func frameElapsed(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return time.Second / time.Duration(tickRate)
	}
	return min(max(now.Sub(prev), 0), maxFrameGap)
}
