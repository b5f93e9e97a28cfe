package mode

import (
	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

// StashResponse carries a fresh stash list (or error).
type StashResponse struct {
	Entries []backend.StashEntry
	Err     error
}

// Stash lists stashes. Grounded on original_source/src/mode/stash.rs,
// with ViewDetails/ViewDiff promoted to the separate StashDetails/Diff
// modes per spec.md §4.9/§4.10 instead of being inlined as states here.
type Stash struct {
	waiting bool
	entries []backend.StashEntry
	output  widget.Output
	sel     widget.SelectMenu
}

func (m *Stash) OnEnter(ctx *Context, info ChangeInfo) {
	if m.waiting {
		return
	}
	m.waiting = true
	m.output.Set("")
	m.refresh(ctx)
}

func (m *Stash) refresh(ctx *Context) {
	go func() {
		entries, err := ctx.Backend.StashList(ctx.Ctx)
		ctx.EventSender.SendResponse(KindStash, StashResponse{Entries: entries, Err: err})
	}()
}

func (m *Stash) OnKey(ctx *Context, key keys.Key) bool {
	available := ctx.AvailableHeight()
	if m.output.Text() == "" {
		m.sel.OnKey(len(m.entries), available, key)
	} else {
		m.output.OnKey(available, key)
	}

	idx := m.sel.Cursor()

	switch key.Kind {
	case keys.Enter:
		if idx < len(m.entries) {
			ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindStashDetails, StashIndex: m.entries[idx].Index})
		}
	case keys.Char:
		switch key.Rune {
		case 'p':
			if idx < len(m.entries) {
				index := m.entries[idx].Index
				m.waiting = true
				go func() {
					err := ctx.Backend.StashPop(ctx.Ctx, index)
					ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindStatus})
					if err != nil {
						ctx.EventSender.SendResponse(KindStash, StashResponse{Err: err})
						return
					}
					ctx.EventSender.SendModeRefresh(KindStatus)
				}()
			}
		case 'A':
			if idx < len(m.entries) {
				index := m.entries[idx].Index
				m.waiting = true
				go func() {
					err := ctx.Backend.StashApply(ctx.Ctx, index)
					entries, refErr := m.refreshList(ctx, err)
					ctx.EventSender.SendResponse(KindStash, StashResponse{Entries: entries, Err: refErr})
				}()
			}
		case 'd':
			if idx < len(m.entries) {
				index := m.entries[idx].Index
				m.entries = append(append([]backend.StashEntry{}, m.entries[:idx]...), m.entries[idx+1:]...)
				m.sel.OnRemoveEntry(idx)
				m.waiting = true
				go func() {
					err := ctx.Backend.StashDrop(ctx.Ctx, index)
					entries, refErr := m.refreshList(ctx, err)
					ctx.EventSender.SendResponse(KindStash, StashResponse{Entries: entries, Err: refErr})
				}()
			}
		}
	}

	return false
}

func (m *Stash) refreshList(ctx *Context, err error) ([]backend.StashEntry, error) {
	if err != nil {
		return nil, err
	}
	return ctx.Backend.StashList(ctx.Ctx)
}

func (m *Stash) OnResponse(ctx *Context, response any) {
	resp, ok := response.(StashResponse)
	if !ok {
		return
	}
	m.waiting = false
	m.entries = nil
	m.output.Set("")
	if resp.Err != nil {
		m.output.Set(resp.Err.Error())
	} else {
		m.entries = resp.Entries
	}
	m.sel.SaturateCursor(len(m.entries))
}

// clone deep-copies entries so a history snapshot never aliases the
// live mode's backing slice.
func (m *Stash) clone() *Stash {
	c := *m
	c.entries = append([]backend.StashEntry(nil), m.entries...)
	return &c
}

func (m *Stash) IsWaitingResponse() bool { return m.waiting }

func (m *Stash) Header() (string, string, string) {
	return "stash", "[p]pop [A]apply [d]drop", "[arrows]move [enter]details"
}

func (m *Stash) Draw(d *drawer.Drawer, available int) {
	if m.output.Text() != "" {
		d.Output(&m.output, available)
		return
	}
	if len(m.entries) == 0 && !m.waiting {
		d.Println("No Stashes!")
		return
	}
	rows := make([]drawer.SelectMenuEntry, len(m.entries))
	for i, e := range m.entries {
		rows[i] = drawer.SelectMenuEntry{Label: e.Branch + ": " + e.Message}
	}
	d.SelectMenu(&m.sel, rows, available)
}
