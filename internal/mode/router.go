package mode

import (
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
)

const historyLimit = 5

// historyEntry is one bounded-history slot: the kind the snapshot
// belongs to, and a cloned Screen holding that mode's exact state at
// the moment it was left, so Back restores scroll/cursor/filter/entries
// without re-fetching anything.
type historyEntry struct {
	kind   Kind
	screen Screen
}

// Router owns the current mode, its Screen table, and a bounded
// back-history, grounded on original_source/src/application.rs's
// Application (enter_mode/refresh_mode/on_key/on_response/draw_header/
// draw_body), translated from Rust's per-kind struct fields into a Go
// map[Kind]Screen dispatch table per spec.md's "closed tagged union,
// static dispatch table" design note.
type Router struct {
	screens     map[Kind]Screen
	current     Kind
	started     bool
	history     []historyEntry
	spinnerTick int
}

// NewRouter builds a Router with the given screens. screens must have an
// entry for every Kind this engine supports.
func NewRouter(screens map[Kind]Screen) *Router {
	return &Router{screens: screens}
}

// Current returns the active mode kind.
func (r *Router) Current() Kind { return r.current }

func (r *Router) currentScreen() Screen { return r.screens[r.current] }

// EnterMode switches to info.Kind, pushing a clone of the previous
// mode's state onto the bounded history stack, and calls the new mode's
// OnEnter. The very first EnterMode call establishes the initial mode
// without recording history, since there is no previous mode to go back
// to, and a transition that targets the mode already active does not
// push either, so history never holds a same-kind entry at its top.
func (r *Router) EnterMode(ctx *Context, info ChangeInfo) {
	if r.started && r.current != info.Kind {
		r.pushHistory(historyEntry{kind: r.current, screen: cloneScreen(r.currentScreen())})
	}
	r.started = true
	r.current = info.Kind
	r.currentScreen().OnEnter(ctx, info)
}

// ReplaceMode switches to info.Kind without recording history, used for
// same-mode refreshes.
func (r *Router) ReplaceMode(ctx *Context, info ChangeInfo) {
	r.current = info.Kind
	r.currentScreen().OnEnter(ctx, info)
}

// RefreshMode re-enters kind's OnEnter only if it is still the active
// mode, discarding stale refreshes targeted at a mode the user has
// already navigated away from.
func (r *Router) RefreshMode(ctx *Context, kind Kind) {
	if r.current != kind {
		return
	}
	r.currentScreen().OnEnter(ctx, ChangeInfo{Kind: kind})
}

func (r *Router) pushHistory(e historyEntry) {
	r.history = append(r.history, e)
	if len(r.history) > historyLimit {
		r.history = r.history[len(r.history)-historyLimit:]
	}
}

// popHistory pops the most recent history entry, if any.
func (r *Router) popHistory() (historyEntry, bool) {
	if len(r.history) == 0 {
		return historyEntry{}, false
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return last, true
}

// Back navigates to the previous mode in history, if any, restoring its
// exact cloned state directly rather than calling OnEnter — a revert is
// not a fresh entry, so scroll, cursor, filter and fetched entries come
// back exactly as they were left. It returns false when history is
// empty (the caller should quit in that case, per spec.md's cancel-key
// policy on the root mode).
func (r *Router) Back(ctx *Context) bool {
	prev, ok := r.popHistory()
	if !ok {
		return false
	}
	r.screens[prev.kind] = prev.screen
	r.current = prev.kind
	return true
}

// cloneScreen returns a deep-enough copy of s for safe history storage:
// one case per concrete mode type, since Screen carries no clone method
// of its own (the same closed-switch style ChangeInfo/Kind use in place
// of a Go sum type). A Screen implementation this switch doesn't know
// about (e.g. a test double) is returned as-is.
func cloneScreen(s Screen) Screen {
	switch v := s.(type) {
	case *Status:
		return v.clone()
	case *Log:
		return v.clone()
	case *RevisionDetails:
		return v.clone()
	case *Diff:
		return v.clone()
	case *Branches:
		return v.clone()
	case *Tags:
		return v.clone()
	case *Stash:
		return v.clone()
	case *StashDetails:
		return v.clone()
	case *MessageInput:
		return v.clone()
	default:
		return s
	}
}

// globalHotkeys maps a key rune to the mode it switches to when no mode
// is capturing text input, grounded on original_source's Application::on_key
// (s/l/b/t/S).
var globalHotkeys = map[rune]Kind{
	's': KindStatus,
	'l': KindLog,
	'b': KindBranches,
	't': KindTags,
	'S': KindStash,
}

// OnKey dispatches key to the active mode, then — if the mode isn't
// capturing text input and the key isn't the cancel key — checks the
// global hotkey table. It returns false when the engine should quit
// (cancel key pressed with empty history).
func (r *Router) OnKey(ctx *Context, key keys.Key) bool {
	pendingInput := r.currentScreen().OnKey(ctx, key)

	if key.IsCancel() {
		if pendingInput {
			return true
		}
		return r.Back(ctx)
	}

	if !pendingInput && key.Kind == keys.Char {
		if kind, ok := globalHotkeys[key.Rune]; ok && kind != r.current {
			r.EnterMode(ctx, ChangeInfo{Kind: kind})
		}
	}

	return true
}

// OnResponse routes a worker's response to the screen named by kind,
// only if it is still the active mode — stale responses from a mode the
// user has navigated away from are silently dropped, matching spec.md's
// resolved cancellation policy.
func (r *Router) OnResponse(ctx *Context, kind Kind, response any) {
	if r.current != kind {
		return
	}
	r.currentScreen().OnResponse(ctx, response)
}

// IsWaitingResponse reports whether the active mode is waiting on a
// background result.
func (r *Router) IsWaitingResponse() bool {
	return r.currentScreen().IsWaitingResponse()
}

// Draw renders the header/spinner chrome and the active mode's body.
func (r *Router) Draw(ctx *Context, d *drawer.Drawer) {
	if r.IsWaitingResponse() {
		r.spinnerTick++
	}
	name, left, right := r.currentScreen().Header()
	d.Header(name, left, right, r.IsWaitingResponse(), r.spinnerTick)
	r.currentScreen().Draw(d, ctx.AvailableHeight())
}
