package term

import "io"

const (
	escEnterAltScreen = "\x1b[?1049h"
	escExitAltScreen  = "\x1b[?1049l"
	escHideCursor     = "\x1b[?25l"
	escShowCursor     = "\x1b[?25h"
	escEnable256      = "\x1b[=19h"
)

// EnterAltScreen switches to the alternate screen buffer, hides the
// cursor, and enables the 256-color palette.
func EnterAltScreen(w io.Writer) {
	_, _ = io.WriteString(w, escEnterAltScreen+escHideCursor+escEnable256)
}

// ExitAltScreen shows the cursor and restores the primary screen buffer.
func ExitAltScreen(w io.Writer) {
	_, _ = io.WriteString(w, escShowCursor+escExitAltScreen)
}
