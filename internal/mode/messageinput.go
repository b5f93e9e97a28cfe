package mode

import (
	"strings"

	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
)

// MessageInput is a generic single-line prompt, grounded on
// original_source/src/mode/message_input.rs's Esc-reverts/Enter-submits
// key policy, generalized to a closed {prompt, placeholder,
// requireNonEmpty, onSubmit, onCancel} payload instead of the original's
// hardcoded Status/Stash origins.
type MessageInput struct {
	prompt          string
	placeholder     string
	requireNonEmpty bool
	readline        widget.ReadLine
	onSubmit        func(*Context, string)
	onCancel        func(*Context)
}

func (m *MessageInput) OnEnter(ctx *Context, info ChangeInfo) {
	m.prompt = info.Prompt
	m.placeholder = info.Placeholder
	m.requireNonEmpty = info.RequireNonEmpty
	m.onSubmit = info.OnSubmit
	m.onCancel = info.OnCancel
	m.readline.Clear()
}

func (m *MessageInput) OnKey(ctx *Context, key keys.Key) bool {
	if key.IsCancel() {
		if m.onCancel != nil {
			m.onCancel(ctx)
		}
		return false
	}

	m.readline.OnKey(key)
	if key.IsSubmit() {
		text := m.readline.Input()
		if m.requireNonEmpty && strings.TrimSpace(text) == "" {
			return true
		}
		ctx.EventSender.SendBack()
		if m.onSubmit != nil {
			m.onSubmit(ctx, text)
		}
		return false
	}
	return true
}

// clone copies state for history; onSubmit/onCancel are plain function
// values so a shallow copy is already a safe, independent snapshot.
func (m *MessageInput) clone() *MessageInput {
	c := *m
	return &c
}

func (m *MessageInput) OnResponse(ctx *Context, response any) {}

func (m *MessageInput) IsWaitingResponse() bool { return false }

func (m *MessageInput) Header() (string, string, string) {
	return m.prompt, "", "[enter]submit [esc]cancel [ctrl+w]delete word [ctrl+u]delete all"
}

func (m *MessageInput) Draw(d *drawer.Drawer, available int) {
	d.ReadLine(&m.readline, m.placeholder)
}
