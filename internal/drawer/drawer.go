package drawer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bmf-san/vico/internal/widget"
	"golang.org/x/text/width"
)

// ReservedLines is the number of rows the header/footer chrome occupies,
// leaving the rest of the viewport for a mode's body.
const ReservedLines = 2

var spinnerFrames = []rune{'-', '\\', '|', '/'}

// Drawer is a buffered ANSI render surface built fresh each frame from a
// reused backing buffer, grounded on original_source's draw_header/
// draw_body contract and the teacher's pkg/ui cursor/clear helpers.
type Drawer struct {
	buf    *bytes.Buffer
	width  int
	height int
	colors *ANSIColors
}

// New wraps buf (cleared by the caller before each frame) for one render
// pass at the given viewport size.
func New(buf *bytes.Buffer, width, height int, colors *ANSIColors) *Drawer {
	return &Drawer{buf: buf, width: width, height: height, colors: colors}
}

func (d *Drawer) Fmt(format string, args ...any) {
	fmt.Fprintf(d.buf, format, args...)
}

func (d *Drawer) Println(s string) {
	d.buf.WriteString(s)
	d.buf.WriteString("\r\n")
}

// Clear resets the cursor to the top-left and clears the screen.
func (d *Drawer) Clear() {
	d.buf.WriteString("\x1b[H\x1b[2J")
}

// Header renders the mode name, help text, and (while waiting) an
// animated spinner cycling through spinnerFrames, keyed off spinnerTick.
func (d *Drawer) Header(name, leftHelp, rightHelp string, waiting bool, spinnerTick int) {
	spinner := ' '
	if waiting {
		spinner = spinnerFrames[spinnerTick%len(spinnerFrames)]
	}
	d.Fmt("%s%s[%c] %s%s", d.colors.Bold, d.colors.Cyan, spinner, name, d.colors.Reset)
	if leftHelp != "" {
		d.Fmt("  %s", leftHelp)
	}
	d.Println("")

	help := rightHelp
	if help != "" {
		d.Println(d.colors.BrightBlack + help + d.colors.Reset)
	} else {
		d.Println("")
	}
}

// Output renders o's currently visible lines within availableHeight rows.
func (d *Drawer) Output(o *widget.Output, availableHeight int) {
	lines := strings.Split(o.Text(), "\n")
	start := o.Scroll()
	if start > len(lines) {
		start = len(lines)
	}
	end := start + availableHeight
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[start:end] {
		d.Println(line)
	}
}

// ReadLine renders a single editable line, falling back to a dimmed
// placeholder when empty.
func (d *Drawer) ReadLine(r *widget.ReadLine, placeholder string) {
	text := r.Input()
	if text == "" && placeholder != "" {
		d.Println(d.colors.BrightBlack + placeholder + d.colors.Reset)
		return
	}
	d.Println("> " + text)
}

// Filter renders the filter's readline, prefixed to distinguish it from
// a plain ReadLine mode.
func (d *Drawer) Filter(f *widget.Filter, placeholder string) {
	prefix := "/"
	if f.HasFocus() {
		prefix = d.colors.Bold + "/" + d.colors.Reset
	}
	text := f.Pattern()
	if text == "" && !f.HasFocus() {
		d.Println(prefix + d.colors.BrightBlack + placeholder + d.colors.Reset)
		return
	}
	d.Println(prefix + text)
}

// SelectMenuEntry is one renderable row of a select menu.
type SelectMenuEntry struct {
	Label    string
	Selected bool
}

// SelectMenu renders a cursor/scroll window over entries.
func (d *Drawer) SelectMenu(sel *widget.SelectMenu, entries []SelectMenuEntry, availableHeight int) {
	start := sel.ScrollOffset()
	end := start + availableHeight
	if end > len(entries) {
		end = len(entries)
	}
	if start > end {
		start = end
	}
	for i := start; i < end; i++ {
		e := entries[i]
		marker := "[ ]"
		if e.Selected {
			marker = "[x]"
		}
		cursor := "  "
		if i == sel.Cursor() {
			cursor = d.colors.Reverse
		}
		d.Println(fmt.Sprintf("%s%s %s%s", cursor, marker, e.Label, d.colors.Reset))
	}
}

// ColumnWidth returns the terminal column width of r, accounting for
// fullwidth/wide runes via golang.org/x/text/width.
func ColumnWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// Flush writes the buffered frame to w.
func (d *Drawer) Flush(w io.Writer) error {
	_, err := w.Write(d.buf.Bytes())
	return err
}
