// Package mode implements the modal state machine: the Kind enum, the
// shared Context every mode call receives, the Screen contract, and the
// ChangeInfo payload a mode change carries.
package mode

import (
	"context"

	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
)

// Kind is the closed tagged union of every mode this engine supports.
type Kind int

const (
	KindStatus Kind = iota
	KindLog
	KindRevisionDetails
	KindDiff
	KindBranches
	KindTags
	KindStash
	KindStashDetails
	KindMessageInput
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindLog:
		return "log"
	case KindRevisionDetails:
		return "revision details"
	case KindDiff:
		return "diff"
	case KindBranches:
		return "branches"
	case KindTags:
		return "tags"
	case KindStash:
		return "stash"
	case KindStashDetails:
		return "stash details"
	case KindMessageInput:
		return "message input"
	default:
		return "unknown"
	}
}

// EventSender is how a mode's background worker goroutine reports back
// to the foreground event loop, mirroring original_source's
// EventSender(mpsc::SyncSender<Event>).
type EventSender interface {
	SendResponse(kind Kind, response any)
	SendModeChange(info ChangeInfo)
	SendModeRefresh(kind Kind)
	SendBack()
}

// Context is the shared, cheaply-copyable handle every mode method
// receives: the backend, a way to post events back, and the current
// viewport size.
type Context struct {
	Ctx          context.Context
	Backend      backend.Backend
	EventSender  EventSender
	ViewportCols int
	ViewportRows int
}

// AvailableHeight returns the rows left for a mode's body after the
// header/footer chrome.
func (c *Context) AvailableHeight() int {
	h := c.ViewportRows - drawer.ReservedLines
	if h < 0 {
		return 0
	}
	return h
}

// ChangeInfo is the payload carried by a mode transition. Only the field
// matching Kind is meaningful; this mirrors the closed tagged union
// spec.md describes (ModeKind::RevisionDetails(String) etc.) as a Go
// struct-of-optional-fields instead of an enum-with-payload, since Go has
// no sum types.
type ChangeInfo struct {
	Kind Kind

	// KindRevisionDetails, KindDiff (the revision, or a stash@{N} ref when
	// diffing a stash)
	Revision string

	// KindStashDetails
	StashIndex int

	// KindDiff: entries to restrict the diff to; nil means "everything".
	DiffEntries []backend.StatusEntry

	// KindMessageInput
	Prompt          string
	Placeholder     string
	RequireNonEmpty bool
	OnSubmit        func(*Context, string)
	OnCancel        func(*Context)
}

// Screen is the contract every mode implements, grounded on
// original_source/src/mode.rs's ModeTrait.
type Screen interface {
	OnEnter(ctx *Context, info ChangeInfo)
	OnKey(ctx *Context, key keys.Key) (pendingInput bool)
	OnResponse(ctx *Context, response any)
	IsWaitingResponse() bool
	Header() (name, leftHelp, rightHelp string)
	Draw(d *drawer.Drawer, availableHeight int)
}
