package mode

import (
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

// DiffResponse carries a diff's rendered text.
type DiffResponse struct {
	Text string
	Err  error
}

// Diff is a read-only scrollable diff view, grounded on
// original_source/src/mode/diff.rs.
type Diff struct {
	waiting bool
	output  widget.Output
}

func (m *Diff) OnEnter(ctx *Context, info ChangeInfo) {
	m.waiting = true
	m.output.Set("")
	revision := info.Revision
	entries := info.DiffEntries
	go func() {
		text, err := ctx.Backend.Diff(ctx.Ctx, revision, entries)
		ctx.EventSender.SendResponse(KindDiff, DiffResponse{Text: text, Err: err})
	}()
}

func (m *Diff) OnKey(ctx *Context, key keys.Key) bool {
	if m.waiting {
		return false
	}
	if key.Kind == keys.Left || (key.Kind == keys.Char && key.Rune == 'q') {
		ctx.EventSender.SendBack()
		return false
	}
	m.output.OnKey(ctx.AvailableHeight(), key)
	return false
}

func (m *Diff) OnResponse(ctx *Context, response any) {
	resp, ok := response.(DiffResponse)
	if !ok {
		return
	}
	m.waiting = false
	if resp.Err != nil {
		m.output.Set(resp.Err.Error())
		return
	}
	m.output.Set(resp.Text)
}

// clone copies state for history, clearing the buffered diff text per
// spec.md §9's allowance: keeping up to five full diffs alive in history
// is needless cost. A Diff left through a global hotkey is pushed to
// history like any other mode, so reverting to it shows an empty view.
func (m *Diff) clone() *Diff {
	c := *m
	c.output.Set("")
	return &c
}

func (m *Diff) IsWaitingResponse() bool { return m.waiting }

func (m *Diff) Header() (string, string, string) {
	return "diff", "", "[arrows]move [left/q]back"
}

func (m *Diff) Draw(d *drawer.Drawer, available int) {
	d.Output(&m.output, available)
}
