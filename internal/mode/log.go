package mode

import (
	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

const logPageSize = 200

// LogResponse carries a page of commits, appended or replacing depending
// on whether this was a pagination fetch.
type LogResponse struct {
	Entries []backend.LogEntry
	Err     error
	Append  bool
}

// Log is the commit history browser.
type Log struct {
	waiting bool
	entries []backend.LogEntry
	output  widget.Output
	sel     widget.SelectMenu
	atEnd   bool
}

func (m *Log) OnEnter(ctx *Context, info ChangeInfo) {
	if m.waiting {
		return
	}
	m.waiting = true
	m.entries = nil
	m.atEnd = false
	m.sel = widget.SelectMenu{}
	m.fetch(ctx, 0, false)
}

func (m *Log) fetch(ctx *Context, skip int, appendPage bool) {
	go func() {
		entries, err := ctx.Backend.Log(ctx.Ctx, skip, logPageSize)
		ctx.EventSender.SendResponse(KindLog, LogResponse{Entries: entries, Err: err, Append: appendPage})
	}()
}

func (m *Log) OnKey(ctx *Context, key keys.Key) bool {
	available := ctx.AvailableHeight()
	action := m.sel.OnKey(len(m.entries), available, key)
	_ = action

	switch key.Kind {
	case keys.Enter:
		idx := m.sel.Cursor()
		if idx < len(m.entries) {
			ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindRevisionDetails, Revision: m.entries[idx].Hash})
		}
	case keys.Down, keys.PageDown, keys.CtrlD:
		if !m.waiting && !m.atEnd && m.sel.Cursor() >= len(m.entries)-5 && len(m.entries) > 0 {
			m.waiting = true
			m.fetch(ctx, len(m.entries), true)
		}
	case keys.Char:
		if key.Rune == 'c' {
			idx := m.sel.Cursor()
			if !m.waiting && idx < len(m.entries) {
				hash := m.entries[idx].Hash
				m.waiting = true
				m.atEnd = false
				go func() {
					err := ctx.Backend.Checkout(ctx.Ctx, hash)
					if err != nil {
						ctx.EventSender.SendResponse(KindLog, LogResponse{Err: err})
						return
					}
					entries, fetchErr := ctx.Backend.Log(ctx.Ctx, 0, logPageSize)
					ctx.EventSender.SendResponse(KindLog, LogResponse{Entries: entries, Err: fetchErr})
				}()
			}
		}
	}

	return false
}

func (m *Log) OnResponse(ctx *Context, response any) {
	resp, ok := response.(LogResponse)
	if !ok {
		return
	}
	m.waiting = false
	if resp.Err != nil {
		m.output.Set(resp.Err.Error())
		return
	}
	if len(resp.Entries) == 0 && resp.Append {
		m.atEnd = true
		return
	}
	if resp.Append {
		m.entries = append(m.entries, resp.Entries...)
	} else {
		m.entries = resp.Entries
	}
	m.sel.SaturateCursor(len(m.entries))
}

// clone deep-copies entries so a history snapshot never aliases the
// live mode's backing slice.
func (m *Log) clone() *Log {
	c := *m
	c.entries = append([]backend.LogEntry(nil), m.entries...)
	return &c
}

func (m *Log) IsWaitingResponse() bool { return m.waiting }

func (m *Log) Header() (string, string, string) {
	return "log", "[c]checkout", "[arrows]move [enter]view revision"
}

func (m *Log) Draw(d *drawer.Drawer, available int) {
	if m.output.Text() != "" {
		d.Output(&m.output, available)
		return
	}
	rows := make([]drawer.SelectMenuEntry, len(m.entries))
	for i, e := range m.entries {
		rows[i] = drawer.SelectMenuEntry{Label: e.Hash + " " + e.Date + " " + e.Author + " " + e.Subject}
	}
	d.SelectMenu(&m.sel, rows, available)
}
