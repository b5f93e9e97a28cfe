package mode

import (
	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

// StatusResponse is the Status mode's single response shape. Status's
// own wait state decides what it means: while a mutating operation
// (discard/resolve) is pending, its arrival marks that operation finished
// and triggers a refresh; otherwise it carries a fresh status read
// (Entries and Branch, or Err).
type StatusResponse struct {
	Entries []backend.StatusEntry
	Branch  string
	Err     error
}

type statusWaitOp int

const (
	statusIdle statusWaitOp = iota
	statusWaitingRefresh
	statusWaitingMutation
)

// statusFilterEntry adapts a backend.StatusEntry for widget.Filter.
type statusFilterEntry backend.StatusEntry

func (e statusFilterEntry) FuzzyMatches(pattern string) bool {
	return widget.FuzzyMatches(e.Name, pattern)
}

// Status is the default mode: the working tree/index file list.
type Status struct {
	wait     statusWaitOp
	branch   string
	entries  []backend.StatusEntry
	selected map[int]bool
	output   widget.Output
	sel      widget.SelectMenu
	filter   widget.Filter
}

func (m *Status) OnEnter(ctx *Context, info ChangeInfo) {
	if m.wait != statusIdle {
		return
	}
	m.wait = statusWaitingRefresh
	m.output.Set("")
	m.requestRefresh(ctx)
}

func (m *Status) requestRefresh(ctx *Context) {
	go func() {
		info, err := ctx.Backend.Status(ctx.Ctx)
		resp := StatusResponse{Err: err}
		if info != nil {
			resp.Entries = info.Entries
			resp.Branch = info.Branch
		}
		ctx.EventSender.SendResponse(KindStatus, resp)
	}()
}

func (m *Status) visibleEntries() []backend.StatusEntry {
	if !m.filter.IsFiltering() {
		return m.entries
	}
	var out []backend.StatusEntry
	for _, i := range m.filter.VisibleIndices() {
		out = append(out, m.entries[i])
	}
	return out
}

// selectedEntries returns the entries with the selected flag set, or
// nil when none are selected — callers treat a nil/empty slice as
// "everything", per spec.md §4.3.
func (m *Status) selectedEntries() []backend.StatusEntry {
	visible := m.visibleEntries()
	var out []backend.StatusEntry
	for i, e := range visible {
		if m.selected[i] {
			out = append(out, e)
		}
	}
	return out
}

func (m *Status) OnKey(ctx *Context, key keys.Key) bool {
	if m.filter.HasFocus() {
		m.filter.OnKey(key)
		statusFilterEntries := make([]statusFilterEntry, len(m.entries))
		for i, e := range m.entries {
			statusFilterEntries[i] = statusFilterEntry(e)
		}
		widget.Apply(&m.filter, statusFilterEntries)
		return true
	}

	available := ctx.AvailableHeight()
	entries := m.visibleEntries()
	action := m.sel.OnKey(len(entries), available, key)

	switch action {
	case widget.SelectToggle:
		idx := m.sel.Cursor()
		if idx < len(entries) {
			if m.selected == nil {
				m.selected = map[int]bool{}
			}
			m.selected[idx] = !m.selected[idx]
		}
	case widget.SelectToggleAll:
		if m.selected == nil {
			m.selected = map[int]bool{}
		}
		all := len(m.selected) == len(entries)
		for i := range entries {
			m.selected[i] = !all
		}
	}

	switch key.Kind {
	case keys.CtrlF:
		m.filter.Enter()
		return true
	case keys.CtrlS:
		ctx.EventSender.SendModeChange(ChangeInfo{
			Kind:            KindMessageInput,
			Prompt:          "stash message (optional)",
			RequireNonEmpty: false,
			OnSubmit: func(ctx *Context, message string) {
				m.wait = statusWaitingMutation
				toStash := m.selectedEntries()
				go func() {
					err := ctx.Backend.Stash(ctx.Ctx, message, toStash)
					if err != nil {
						ctx.EventSender.SendResponse(KindStatus, StatusResponse{Err: err})
						return
					}
					ctx.EventSender.SendModeRefresh(KindStatus)
				}()
			},
		})
	case keys.Char:
		switch key.Rune {
		case 'c':
			ctx.EventSender.SendModeChange(ChangeInfo{
				Kind:            KindMessageInput,
				Prompt:          "commit message",
				RequireNonEmpty: true,
				OnSubmit: func(ctx *Context, message string) {
					m.wait = statusWaitingMutation
					entries := m.selectedEntries()
					go func() {
						err := ctx.Backend.Commit(ctx.Ctx, message, entries, false)
						ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindLog})
						if err != nil {
							ctx.EventSender.SendResponse(KindStatus, StatusResponse{Err: err})
							return
						}
						ctx.EventSender.SendModeRefresh(KindLog)
					}()
				},
			})
		case 'A':
			m.wait = statusWaitingMutation
			toAmend := m.selectedEntries()
			go func() {
				err := ctx.Backend.Commit(ctx.Ctx, "", toAmend, true)
				ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindLog})
				if err != nil {
					ctx.EventSender.SendResponse(KindStatus, StatusResponse{Err: err})
					return
				}
				ctx.EventSender.SendModeRefresh(KindLog)
			}()
		case 'D':
			m.wait = statusWaitingMutation
			toDiscard := m.selectedEntries()
			go func() {
				err := ctx.Backend.Discard(ctx.Ctx, toDiscard)
				ctx.EventSender.SendResponse(KindStatus, StatusResponse{Err: err})
			}()
		case 'O':
			m.wait = statusWaitingMutation
			toResolve := m.selectedEntries()
			go func() {
				err := ctx.Backend.ResolveTakingOurs(ctx.Ctx, toResolve)
				ctx.EventSender.SendResponse(KindStatus, StatusResponse{Err: err})
			}()
		case 'T':
			m.wait = statusWaitingMutation
			toResolve := m.selectedEntries()
			go func() {
				err := ctx.Backend.ResolveTakingTheirs(ctx.Ctx, toResolve)
				ctx.EventSender.SendResponse(KindStatus, StatusResponse{Err: err})
			}()
		}
	case keys.Enter:
		idx := m.sel.Cursor()
		if idx < len(entries) {
			ctx.EventSender.SendModeChange(ChangeInfo{
				Kind:        KindDiff,
				DiffEntries: []backend.StatusEntry{entries[idx]},
			})
		}
	}

	return false
}

func (m *Status) OnResponse(ctx *Context, response any) {
	resp, ok := response.(StatusResponse)
	if !ok {
		return
	}
	if m.wait == statusWaitingMutation {
		m.wait = statusIdle
		m.requestRefresh(ctx)
		return
	}
	m.wait = statusIdle
	if resp.Err != nil {
		m.output.Set(resp.Err.Error())
		m.entries = nil
		return
	}
	m.output.Set("")
	m.entries = resp.Entries
	m.branch = resp.Branch
	m.selected = map[int]bool{}
	m.sel.SaturateCursor(len(m.entries))
}

// clone deep-copies entries/selected/filter so a history snapshot never
// aliases the live mode's mutable state.
func (m *Status) clone() *Status {
	c := *m
	c.entries = append([]backend.StatusEntry(nil), m.entries...)
	if m.selected != nil {
		c.selected = make(map[int]bool, len(m.selected))
		for k, v := range m.selected {
			c.selected[k] = v
		}
	}
	c.filter = m.filter.Clone()
	return &c
}

func (m *Status) IsWaitingResponse() bool { return m.wait != statusIdle }

func (m *Status) Header() (string, string, string) {
	left := "[space]toggle [a]all [c]commit [A]amend [D]discard [ctrl+s]stash [O]ours [T]theirs"
	right := "[arrows]move [enter]diff [ctrl+f]filter"
	return "status: " + m.branch, left, right
}

func (m *Status) Draw(d *drawer.Drawer, available int) {
	if m.output.Text() != "" {
		d.Output(&m.output, available)
		return
	}
	entries := m.visibleEntries()
	rows := make([]drawer.SelectMenuEntry, len(entries))
	for i, e := range entries {
		rows[i] = drawer.SelectMenuEntry{
			Label:    e.Status.String() + " " + e.Name,
			Selected: m.selected[i],
		}
	}
	d.SelectMenu(&m.sel, rows, available)
	if m.filter.IsFiltering() {
		d.Filter(&m.filter, "filter files...")
	}
}
