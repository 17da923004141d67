// internal/app/help.go

package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vinyl/internal/keymap"
	"github.com/llehouerou/vinyl/internal/ui/styles"
)

const (
	helpWidth     = 46
	helpMaxHeight = 24
)

// openHelp builds the help overlay and hands the scroll region to a
// viewport. The on-screen image is deleted first: protocol images float
// above text and would otherwise cover the dialog.
func (m *Model) openHelp() {
	m.showHelp = true
	m.wipe += m.Art.Clear()
	m.help = viewport.New(0, 0)
	m.sizeHelp()
	m.help.SetContent(m.helpContent())
	m.help.GotoTop()
	m.dirty = true
}

func (m *Model) closeHelp() {
	m.showHelp = false
	m.refreshArt()
	m.dirty = true
}

// handleHelpKey routes keys while the overlay is open: quit still quits,
// help or escape closes, everything else scrolls the viewport.
func (m Model) handleHelpKey(msg tea.KeyMsg, action keymap.Action) (tea.Model, tea.Cmd) {
	switch {
	case action == keymap.ActionQuit:
		cmd := m.doShutdown(nil)
		return m, cmd
	case action == keymap.ActionHelp || msg.String() == "esc":
		m.closeHelp()
		return m, nil
	}

	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	m.dirty = true
	return m, cmd
}

func (m *Model) sizeHelp() {
	w := helpWidth
	if limit := m.width - 6; w > limit {
		w = limit
	}
	h := m.height - 6
	if h > helpMaxHeight {
		h = helpMaxHeight
	}
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	m.help.Width = w
	m.help.Height = h
}

// helpContent lists every binding grouped by context, with the keys the
// resolver actually has after config overrides, then the daemon library
// statistics as a footer section.
func (m *Model) helpContent() string {
	s := styles.T().S()
	var b strings.Builder

	sections := []struct {
		title   string
		context string
	}{
		{"Global", "global"},
		{"Playback", "playback"},
		{"Playlist", "playlist"},
	}
	for _, section := range sections {
		b.WriteString(s.Title.Render(section.title))
		b.WriteString("\n")
		for _, kb := range keymap.ByContext(section.context) {
			keys := m.Keys.KeysFor(kb.Action)
			printable := make([]string, len(keys))
			for i, k := range keys {
				printable[i] = keymap.PrintableKey(k)
			}
			fmt.Fprintf(&b, "  %s %s\n",
				s.Accent.Render(fmt.Sprintf("%-13s", strings.Join(printable, ", "))),
				kb.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString(m.helpStats())
	return strings.TrimRight(b.String(), "\n")
}

// helpStats renders the daemon library section. Statistics are a
// nicety: when the daemon call fails the section is simply omitted.
func (m *Model) helpStats() string {
	stats, err := m.Daemon.Stats()
	if err != nil {
		return ""
	}
	s := styles.T().S()
	now := time.Now()

	var b strings.Builder
	b.WriteString(s.Title.Render("Library"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s artists, %s albums, %s songs\n",
		humanize.Comma(int64(stats.Artists)),
		humanize.Comma(int64(stats.Albums)),
		humanize.Comma(int64(stats.Songs)))
	fmt.Fprintf(&b, "  %s of audio, updated %s\n",
		strings.TrimSpace(humanize.RelTime(now.Add(-stats.DBPlaytime), now, "", "")),
		humanize.Time(stats.DBUpdated))
	fmt.Fprintf(&b, "  daemon up %s\n",
		strings.TrimSpace(humanize.RelTime(now.Add(-stats.Uptime), now, "", "")))
	return b.String()
}
