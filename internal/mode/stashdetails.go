package mode

import (
	"strconv"

	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

// StashDetails shows one stash's branch/message and lets the user jump
// to its diff, promoted out of original_source's Stash::State::ViewDetails
// into its own mode per spec.md.
type StashDetails struct {
	index   int
	waiting bool
	entries []backend.StashEntry
	output  widget.Output
}

func (m *StashDetails) OnEnter(ctx *Context, info ChangeInfo) {
	m.index = info.StashIndex
	m.waiting = true
	go func() {
		entries, err := ctx.Backend.StashList(ctx.Ctx)
		ctx.EventSender.SendResponse(KindStashDetails, StashResponse{Entries: entries, Err: err})
	}()
}

func (m *StashDetails) OnKey(ctx *Context, key keys.Key) bool {
	if m.waiting {
		return false
	}
	if key.Kind == keys.Left || (key.Kind == keys.Char && key.Rune == 'q') {
		ctx.EventSender.SendBack()
		return false
	}
	if key.Kind == keys.Enter {
		ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindDiff, Revision: "stash@{" + strconv.Itoa(m.index) + "}"})
		return false
	}
	m.output.OnKey(ctx.AvailableHeight(), key)
	return false
}

func (m *StashDetails) OnResponse(ctx *Context, response any) {
	resp, ok := response.(StashResponse)
	if !ok {
		return
	}
	m.waiting = false
	if resp.Err != nil {
		m.output.Set(resp.Err.Error())
		return
	}
	for _, e := range resp.Entries {
		if e.Index == m.index {
			m.output.Set(e.Branch + "\n\n" + e.Message)
			return
		}
	}
	m.output.Set("stash not found")
}

// clone deep-copies entries so a history snapshot never aliases the
// live mode's backing slice.
func (m *StashDetails) clone() *StashDetails {
	c := *m
	c.entries = append([]backend.StashEntry(nil), m.entries...)
	return &c
}

func (m *StashDetails) IsWaitingResponse() bool { return m.waiting }

func (m *StashDetails) Header() (string, string, string) {
	return "stash details", "", "[enter]diff [left/q]back"
}

func (m *StashDetails) Draw(d *drawer.Drawer, available int) {
	d.Output(&m.output, available)
}
