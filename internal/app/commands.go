// internal/app/commands.go

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// framesPerSecond is the render loop rate. Every state change waits for
// the next tick, so this bounds input-to-screen latency at one frame.
const framesPerSecond = 20

const tickInterval = time.Second / framesPerSecond

// followDelaySeconds is how long a manual selection move keeps the
// playlist cursor from snapping back to the playing track.
const followDelaySeconds = 5

// noticeSeconds is how long a transient notice stays on screen.
const noticeSeconds = 3

// tickCmd returns a command that sends TickMsg after d. The caller
// passes the remainder of the current frame so the loop does not drift.
func tickCmd(d time.Duration) tea.Cmd {
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
