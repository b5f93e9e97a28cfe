// Package term adapts the local terminal: raw mode, size queries, and
// non-blocking pending-input probing, adapted from the teacher's
// internal/termio package.
package term

import (
	"os"

	"golang.org/x/term"
)

// Terminal puts a file descriptor into and out of raw mode.
type Terminal interface {
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
}

// DefaultTerminal delegates to golang.org/x/term.
type DefaultTerminal struct{}

func (DefaultTerminal) MakeRaw(fd int) (*term.State, error) { return term.MakeRaw(fd) }
func (DefaultTerminal) Restore(fd int, state *term.State) error {
	return term.Restore(fd, state)
}

// Size returns the current terminal width/height, falling back to
// fallbackWidth/fallbackHeight when the query fails (e.g. output
// redirected to a file).
func Size(f *os.File, fallbackWidth, fallbackHeight int) (int, int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// IsTerminal reports whether f is attached to a terminal capable of raw
// mode.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
