package overlay

import (
	"strings"
	"testing"
)

func TestCompose(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")
	popup := "\n   [ab]\n"

	got := Compose(base, popup, 10, 3)
	lines := strings.Split(got, "\n")

	if lines[0] != ".........." {
		t.Errorf("line 0 = %q, want untouched base", lines[0])
	}
	if lines[1] != "...[ab]..." {
		t.Errorf("line 1 = %q, want popup spliced in", lines[1])
	}
	if lines[2] != ".........." {
		t.Errorf("line 2 = %q, want untouched base", lines[2])
	}
}

func TestComposeShortBase(t *testing.T) {
	// Base lines shorter than the overlay position are padded out.
	got := Compose("..", " X", 5, 1)

	if got != ".X   " {
		t.Errorf("Compose() = %q, want %q", got, ".X   ")
	}
}

func TestComposeOverlayTallerThanBase(t *testing.T) {
	got := Compose("....", "A\nB\nC", 4, 1)

	if n := len(strings.Split(got, "\n")); n != 1 {
		t.Errorf("Compose() produced %d lines, want 1 (extra overlay lines dropped)", n)
	}
}

func TestCenter(t *testing.T) {
	got := Center("ab", 6, 3)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("Center() produced %d lines, want 2 (one pad row + content)", len(lines))
	}
	if lines[1] != "  ab" {
		t.Errorf("content line = %q, want %q", lines[1], "  ab")
	}
}

func TestDialogRender(t *testing.T) {
	d := Dialog{Title: "Help", Content: "q  quit\n?  help", Footer: "press any key"}

	got := d.Render(60, 20)

	if !strings.Contains(got, "q  quit") {
		t.Errorf("dialog missing content, got:\n%s", got)
	}
	if !strings.Contains(got, "press any key") {
		t.Errorf("dialog missing footer, got:\n%s", got)
	}
	// Rounded border corners from the popup style.
	if !strings.Contains(got, "╭") || !strings.Contains(got, "╰") {
		t.Errorf("dialog missing border, got:\n%s", got)
	}
}
