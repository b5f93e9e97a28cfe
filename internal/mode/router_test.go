package mode

import (
	"context"
	"testing"

	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender discards everything posted to it; these tests drive the
// router/modes directly rather than through the real event channel.
type fakeSender struct{}

func (f *fakeSender) SendResponse(kind Kind, response any) {}
func (f *fakeSender) SendModeChange(info ChangeInfo)        {}
func (f *fakeSender) SendModeRefresh(kind Kind)              {}
func (f *fakeSender) SendBack()                              {}

// trackingScreen is a minimal Screen used to test Router bookkeeping
// without depending on any concrete mode's semantics.
type trackingScreen struct {
	kind    Kind
	entered int
}

func (s *trackingScreen) OnEnter(ctx *Context, info ChangeInfo)         { s.entered++ }
func (s *trackingScreen) OnKey(ctx *Context, key keys.Key) bool         { return false }
func (s *trackingScreen) OnResponse(ctx *Context, response any)         {}
func (s *trackingScreen) IsWaitingResponse() bool                      { return false }
func (s *trackingScreen) Header() (string, string, string)             { return s.kind.String(), "", "" }
func (s *trackingScreen) Draw(d *drawer.Drawer, availableHeight int)   {}

func newTestRouter() (*Router, map[Kind]*trackingScreen) {
	screens := map[Kind]Screen{}
	tracked := map[Kind]*trackingScreen{}
	for _, k := range []Kind{KindStatus, KindLog, KindBranches, KindTags, KindStash} {
		ts := &trackingScreen{kind: k}
		screens[k] = ts
		tracked[k] = ts
	}
	return NewRouter(screens), tracked
}

func testContext() *Context {
	return &Context{Ctx: context.Background(), Backend: &backend.MockBackend{}, EventSender: &fakeSender{}}
}

func TestRouterEnterModePushesHistory(t *testing.T) {
	router, tracked := newTestRouter()
	modeCtx := testContext()

	router.EnterMode(modeCtx, ChangeInfo{Kind: KindStatus})
	assert.Equal(t, KindStatus, router.Current())
	assert.Equal(t, 1, tracked[KindStatus].entered)

	router.EnterMode(modeCtx, ChangeInfo{Kind: KindLog})
	assert.Equal(t, KindLog, router.Current())
	assert.Equal(t, 1, tracked[KindLog].entered)

	// Back restores the prior screen directly rather than calling
	// OnEnter again, so entered stays at 1: a revert is not a fresh
	// entry into the mode.
	ok := router.Back(modeCtx)
	require.True(t, ok)
	assert.Equal(t, KindStatus, router.Current())
	assert.Equal(t, 1, tracked[KindStatus].entered)
}

func TestRouterEnterModeSameKindDoesNotPushHistory(t *testing.T) {
	router, _ := newTestRouter()
	modeCtx := testContext()

	router.EnterMode(modeCtx, ChangeInfo{Kind: KindStatus})
	router.EnterMode(modeCtx, ChangeInfo{Kind: KindStatus})

	assert.False(t, router.Back(modeCtx))
}

func TestRouterBackRestoresExactPriorModeState(t *testing.T) {
	screens := map[Kind]Screen{
		KindLog:  &Log{},
		KindDiff: &Diff{},
	}
	router := NewRouter(screens)
	modeCtx := testContext()

	log := screens[KindLog].(*Log)
	router.EnterMode(modeCtx, ChangeInfo{Kind: KindLog})
	log.entries = []backend.LogEntry{{Hash: "a"}, {Hash: "b"}, {Hash: "c"}}
	log.sel.SetCursor(2)

	router.EnterMode(modeCtx, ChangeInfo{Kind: KindDiff})
	// Mutating the live Log after leaving it must not affect the
	// snapshot sitting in history.
	log.entries = nil
	log.sel.SetCursor(0)

	require.True(t, router.Back(modeCtx))
	restored := router.screens[KindLog].(*Log)
	assert.Equal(t, 2, restored.sel.Cursor())
	require.Len(t, restored.entries, 3)
	assert.Equal(t, "c", restored.entries[2].Hash)
}

func TestRouterBackWithEmptyHistoryReturnsFalse(t *testing.T) {
	router, _ := newTestRouter()
	modeCtx := testContext()
	router.EnterMode(modeCtx, ChangeInfo{Kind: KindStatus})
	assert.False(t, router.Back(modeCtx))
}

func TestRouterGlobalHotkeySwitchesMode(t *testing.T) {
	router, tracked := newTestRouter()
	modeCtx := testContext()
	router.EnterMode(modeCtx, ChangeInfo{Kind: KindStatus})

	router.OnKey(modeCtx, keys.Key{Kind: keys.Char, Rune: 'l'})
	assert.Equal(t, KindLog, router.Current())
	assert.Equal(t, 1, tracked[KindLog].entered)
}

func TestRouterHistoryBounded(t *testing.T) {
	router, _ := newTestRouter()
	modeCtx := testContext()
	kinds := []Kind{KindStatus, KindLog, KindBranches, KindTags, KindStash, KindStatus, KindLog, KindBranches}
	for _, k := range kinds {
		router.EnterMode(modeCtx, ChangeInfo{Kind: k})
	}
	assert.LessOrEqual(t, len(router.history), historyLimit)
}
