package mode

import (
	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

// BranchesResponse carries a fresh branch list (or error).
type BranchesResponse struct {
	Entries []backend.BranchEntry
	Err     error
}

type branchesState int

const (
	branchesIdle branchesState = iota
	branchesWaiting
	branchesNewNameInput
)

// Branches lists local branches, grounded on
// original_source/src/mode/branches.rs.
type Branches struct {
	state    branchesState
	entries  []backend.BranchEntry
	output   widget.Output
	sel      widget.SelectMenu
	readline widget.ReadLine
}

func (m *Branches) OnEnter(ctx *Context, info ChangeInfo) {
	if m.state == branchesWaiting {
		return
	}
	m.state = branchesWaiting
	m.output.Set("")
	m.readline.Clear()
	m.refresh(ctx)
}

func (m *Branches) refresh(ctx *Context) {
	go func() {
		entries, err := ctx.Backend.Branches(ctx.Ctx)
		ctx.EventSender.SendResponse(KindBranches, BranchesResponse{Entries: entries, Err: err})
	}()
}

func (m *Branches) OnKey(ctx *Context, key keys.Key) bool {
	available := ctx.AvailableHeight()

	switch m.state {
	case branchesIdle, branchesWaiting:
		if m.output.Text() == "" {
			m.sel.OnKey(len(m.entries), available, key)
		} else {
			m.output.OnKey(available, key)
		}

		if key.Kind == keys.Enter {
			idx := m.sel.Cursor()
			if idx < len(m.entries) {
				entry := m.entries[idx]
				if entry.CheckedOut {
					ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindLog})
				} else {
					name := entry.Name
					m.state = branchesWaiting
					go func() {
						ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindLog})
						if err := ctx.Backend.Checkout(ctx.Ctx, name); err != nil {
							ctx.EventSender.SendResponse(KindBranches, BranchesResponse{Err: err})
							return
						}
						ctx.EventSender.SendModeRefresh(KindLog)
					}()
				}
			}
		}

		if key.Kind == keys.Char {
			idx := m.sel.Cursor()
			switch key.Rune {
			case 'n':
				m.state = branchesNewNameInput
				m.output.Set("")
				m.readline.Clear()
			case 'd', 'D':
				if idx < len(m.entries) {
					name := m.entries[idx].Name
					force := key.Rune == 'D'
					m.entries = append(append([]backend.BranchEntry{}, m.entries[:idx]...), m.entries[idx+1:]...)
					m.sel.OnRemoveEntry(idx)
					m.state = branchesWaiting
					go func() {
						err := ctx.Backend.DeleteBranch(ctx.Ctx, name, force)
						var refreshed []backend.BranchEntry
						var refErr error
						if err == nil {
							refreshed, refErr = ctx.Backend.Branches(ctx.Ctx)
						} else {
							refErr = err
						}
						ctx.EventSender.SendResponse(KindBranches, BranchesResponse{Entries: refreshed, Err: refErr})
					}()
				}
			case 'm':
				if idx < len(m.entries) {
					name := m.entries[idx].Name
					m.state = branchesWaiting
					go func() {
						ctx.EventSender.SendModeChange(ChangeInfo{Kind: KindLog})
						if err := ctx.Backend.Merge(ctx.Ctx, name); err != nil {
							ctx.EventSender.SendResponse(KindBranches, BranchesResponse{Err: err})
							return
						}
						ctx.EventSender.SendModeRefresh(KindLog)
					}()
				}
			}
		}
	case branchesNewNameInput:
		if key.IsCancel() {
			m.state = branchesIdle
			m.readline.Clear()
			return true
		}
		m.readline.OnKey(key)
		if key.IsSubmit() {
			name := m.readline.Input()
			m.state = branchesWaiting
			go func() {
				err := ctx.Backend.NewBranch(ctx.Ctx, name)
				var entries []backend.BranchEntry
				var refErr error
				if err == nil {
					entries, refErr = ctx.Backend.Branches(ctx.Ctx)
				} else {
					refErr = err
				}
				ctx.EventSender.SendResponse(KindBranches, BranchesResponse{Entries: entries, Err: refErr})
			}()
		}
	}

	return m.state == branchesNewNameInput
}

func (m *Branches) OnResponse(ctx *Context, response any) {
	resp, ok := response.(BranchesResponse)
	if !ok {
		return
	}
	m.state = branchesIdle
	m.entries = nil
	m.output.Set("")
	if resp.Err != nil {
		m.output.Set(resp.Err.Error())
	} else {
		m.entries = resp.Entries
	}

	checkedOut := -1
	for i, e := range m.entries {
		if e.CheckedOut {
			checkedOut = i
			break
		}
	}
	if checkedOut >= 0 {
		m.sel.SetCursor(checkedOut)
	} else {
		m.sel.SaturateCursor(len(m.entries))
	}
}

// clone deep-copies entries so a history snapshot never aliases the
// live mode's backing slice.
func (m *Branches) clone() *Branches {
	c := *m
	c.entries = append([]backend.BranchEntry(nil), m.entries...)
	return &c
}

func (m *Branches) IsWaitingResponse() bool { return m.state == branchesWaiting }

func (m *Branches) Header() (string, string, string) {
	switch m.state {
	case branchesNewNameInput:
		return "new branch name", "", "[enter]submit [esc]cancel"
	default:
		return "branches", "[enter]checkout [n]new [d]delete [D]force-delete [m]merge", "[arrows]move"
	}
}

func (m *Branches) Draw(d *drawer.Drawer, available int) {
	if m.state == branchesNewNameInput {
		d.ReadLine(&m.readline, "type in the branch name...")
		return
	}
	if m.output.Text() != "" {
		d.Output(&m.output, available)
		return
	}
	rows := make([]drawer.SelectMenuEntry, len(m.entries))
	for i, e := range m.entries {
		label := e.Name
		if e.CheckedOut {
			label += " (checked out)"
		}
		rows[i] = drawer.SelectMenuEntry{Label: label}
	}
	d.SelectMenu(&m.sel, rows, available)
}
