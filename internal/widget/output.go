package widget

import (
	"math"
	"strings"

	"github.com/bmf-san/vico/internal/keys"
)

// Output is a scrollable block of read-only text, such as a diff or a
// commit message.
type Output struct {
	text      string
	lineCount int
	scroll    int
}

// Text returns the full, unscrolled text.
func (o *Output) Text() string { return o.text }

// LineCount returns the number of lines in Text.
func (o *Output) LineCount() int { return o.lineCount }

// Scroll returns the current scroll offset, in lines.
func (o *Output) Scroll() int { return o.scroll }

// Set replaces the text and resets scroll to the top.
func (o *Output) Set(text string) {
	o.text = text
	o.scroll = 0
	o.lineCount = lineCount(text)
}

// lineCount counts text's lines the way Rust's str::lines() does: a
// trailing newline does not introduce a phantom empty final line.
func lineCount(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// OnKey handles scroll-only navigation within availableHeight rows.
func (o *Output) OnKey(availableHeight int, key keys.Key) {
	halfHeight := availableHeight / 2

	switch key.Kind {
	case keys.Down:
		o.scroll++
	case keys.Char:
		if key.Rune == 'j' {
			o.scroll++
		} else if key.Rune == 'k' && o.scroll > 0 {
			o.scroll--
		}
	case keys.Up:
		if o.scroll > 0 {
			o.scroll--
		}
	case keys.CtrlH, keys.Home:
		o.scroll = 0
	case keys.CtrlE, keys.End:
		o.scroll = math.MaxInt32
	case keys.CtrlD, keys.PageDown:
		o.scroll += halfHeight
	case keys.CtrlU, keys.PageUp:
		o.scroll = saturatingSub(o.scroll, halfHeight)
	}

	maxScroll := saturatingSub(o.lineCount, availableHeight)
	if o.scroll > maxScroll {
		o.scroll = maxScroll
	}
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
