package mode

import (
	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

// TagsResponse carries a fresh tag list (or error).
type TagsResponse struct {
	Entries []backend.TagEntry
	Err     error
}

type tagsState int

const (
	tagsIdle tagsState = iota
	tagsWaiting
	tagsNewNameInput
)

// Tags lists tags. Unlike Branches there is no checked-out concept and
// no merge/force-delete, per spec.md §4.8.
type Tags struct {
	state    tagsState
	entries  []backend.TagEntry
	output   widget.Output
	sel      widget.SelectMenu
	readline widget.ReadLine
}

func (m *Tags) OnEnter(ctx *Context, info ChangeInfo) {
	if m.state == tagsWaiting {
		return
	}
	m.state = tagsWaiting
	m.output.Set("")
	m.readline.Clear()
	m.refresh(ctx)
}

func (m *Tags) refresh(ctx *Context) {
	go func() {
		entries, err := ctx.Backend.Tags(ctx.Ctx)
		ctx.EventSender.SendResponse(KindTags, TagsResponse{Entries: entries, Err: err})
	}()
}

func (m *Tags) OnKey(ctx *Context, key keys.Key) bool {
	available := ctx.AvailableHeight()

	switch m.state {
	case tagsIdle, tagsWaiting:
		if m.output.Text() == "" {
			m.sel.OnKey(len(m.entries), available, key)
		} else {
			m.output.OnKey(available, key)
		}

		if key.Kind == keys.Char {
			idx := m.sel.Cursor()
			switch key.Rune {
			case 'n':
				m.state = tagsNewNameInput
				m.output.Set("")
				m.readline.Clear()
			case 'd':
				if idx < len(m.entries) {
					name := m.entries[idx].Name
					m.entries = append(append([]backend.TagEntry{}, m.entries[:idx]...), m.entries[idx+1:]...)
					m.sel.OnRemoveEntry(idx)
					m.state = tagsWaiting
					go func() {
						err := ctx.Backend.DeleteTag(ctx.Ctx, name)
						var entries []backend.TagEntry
						var refErr error
						if err == nil {
							entries, refErr = ctx.Backend.Tags(ctx.Ctx)
						} else {
							refErr = err
						}
						ctx.EventSender.SendResponse(KindTags, TagsResponse{Entries: entries, Err: refErr})
					}()
				}
			}
		}
	case tagsNewNameInput:
		if key.IsCancel() {
			m.state = tagsIdle
			m.readline.Clear()
			return true
		}
		m.readline.OnKey(key)
		if key.IsSubmit() {
			name := m.readline.Input()
			m.state = tagsWaiting
			go func() {
				err := ctx.Backend.NewTag(ctx.Ctx, name)
				var entries []backend.TagEntry
				var refErr error
				if err == nil {
					entries, refErr = ctx.Backend.Tags(ctx.Ctx)
				} else {
					refErr = err
				}
				ctx.EventSender.SendResponse(KindTags, TagsResponse{Entries: entries, Err: refErr})
			}()
		}
	}

	return m.state == tagsNewNameInput
}

func (m *Tags) OnResponse(ctx *Context, response any) {
	resp, ok := response.(TagsResponse)
	if !ok {
		return
	}
	m.state = tagsIdle
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
func (m *Tags) clone() *Tags {
	c := *m
	c.entries = append([]backend.TagEntry(nil), m.entries...)
	return &c
}

func (m *Tags) IsWaitingResponse() bool { return m.state == tagsWaiting }

func (m *Tags) Header() (string, string, string) {
	if m.state == tagsNewNameInput {
		return "new tag name", "", "[enter]submit [esc]cancel"
	}
	return "tags", "[n]new [d]delete", "[arrows]move"
}

func (m *Tags) Draw(d *drawer.Drawer, available int) {
	if m.state == tagsNewNameInput {
		d.ReadLine(&m.readline, "type in the tag name...")
		return
	}
	if m.output.Text() != "" {
		d.Output(&m.output, available)
		return
	}
	rows := make([]drawer.SelectMenuEntry, len(m.entries))
	for i, e := range m.entries {
		rows[i] = drawer.SelectMenuEntry{Label: e.Name}
	}
	d.SelectMenu(&m.sel, rows, available)
}
