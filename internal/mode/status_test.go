package mode

import (
	"context"
	"testing"

	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOnEnterFetchesAndOnResponsePopulates(t *testing.T) {
	done := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		StatusFunc: func(ctx context.Context) (*backend.StatusInfo, error) {
			defer func() { done <- struct{}{} }()
			return &backend.StatusInfo{
				Branch: "main",
				Entries: []backend.StatusEntry{
					{Status: backend.Modified, Name: "a.go"},
					{Status: backend.Untracked, Name: "b.go"},
				},
			}, nil
		},
	}
	s := &Status{}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}}
	s.OnEnter(ctx, ChangeInfo{Kind: KindStatus})
	<-done

	s.OnResponse(ctx, StatusResponse{
		Entries: []backend.StatusEntry{{Status: backend.Modified, Name: "a.go"}, {Status: backend.Untracked, Name: "b.go"}},
		Branch:  "main",
	})

	require.Len(t, s.entries, 2)
	assert.Equal(t, "main", s.branch)
	assert.False(t, s.IsWaitingResponse())
}

func TestStatusDiscardAllWhenNothingSelected(t *testing.T) {
	var gotEntries []backend.StatusEntry
	called := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		DiscardFunc: func(ctx context.Context, entries []backend.StatusEntry) error {
			gotEntries = entries
			called <- struct{}{}
			return nil
		},
	}
	s := &Status{entries: []backend.StatusEntry{{Name: "a.go"}}}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}, ViewportRows: 24, ViewportCols: 80}

	s.OnKey(ctx, keyChar('D'))
	<-called
	assert.Empty(t, gotEntries)
}

func TestStatusDiscardSelectedEntryOnly(t *testing.T) {
	var gotEntries []backend.StatusEntry
	called := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		DiscardFunc: func(ctx context.Context, entries []backend.StatusEntry) error {
			gotEntries = entries
			called <- struct{}{}
			return nil
		},
	}
	s := &Status{
		entries:  []backend.StatusEntry{{Name: "a.go"}, {Name: "b.go"}},
		selected: map[int]bool{0: true},
	}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}, ViewportRows: 24, ViewportCols: 80}

	s.OnKey(ctx, keyChar('D'))
	<-called
	require.Len(t, gotEntries, 1)
	assert.Equal(t, "a.go", gotEntries[0].Name)
}

func TestStatusAmendCommitsWithNoEditAndNoPrompt(t *testing.T) {
	var gotAmend bool
	var gotMessage string
	called := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		CommitFunc: func(ctx context.Context, message string, entries []backend.StatusEntry, amend bool) error {
			gotMessage = message
			gotAmend = amend
			called <- struct{}{}
			return nil
		},
	}
	s := &Status{entries: []backend.StatusEntry{{Name: "a.go"}}}
	var changes []Kind
	sender := &capturingSender{onChange: func(info ChangeInfo) { changes = append(changes, info.Kind) }}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: sender, ViewportRows: 24, ViewportCols: 80}

	s.OnKey(ctx, keyChar('A'))
	<-called
	assert.True(t, gotAmend)
	assert.Empty(t, gotMessage)
	assert.Contains(t, changes, KindLog)
}

func TestStatusCtrlSOpensStashMessagePrompt(t *testing.T) {
	s := &Status{entries: []backend.StatusEntry{{Name: "a.go"}}}
	var sent ChangeInfo
	sender := &capturingSender{onChange: func(info ChangeInfo) { sent = info }}
	ctx := &Context{Ctx: context.Background(), Backend: &backend.MockBackend{}, EventSender: sender, ViewportRows: 24, ViewportCols: 80}

	s.OnKey(ctx, keys.Key{Kind: keys.CtrlS})

	assert.Equal(t, KindMessageInput, sent.Kind)
	assert.False(t, sent.RequireNonEmpty)
	require.NotNil(t, sent.OnSubmit)
}

func TestStatusResolveOursUsesUppercaseO(t *testing.T) {
	done := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		ResolveTakingOursFunc: func(ctx context.Context, entries []backend.StatusEntry) error {
			done <- struct{}{}
			return nil
		},
	}
	s := &Status{entries: []backend.StatusEntry{{Name: "a.go"}}}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}, ViewportRows: 24, ViewportCols: 80}

	s.OnKey(ctx, keyChar('O'))
	<-done
}

func TestStatusResolveTheirsUsesUppercaseT(t *testing.T) {
	done := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		ResolveTakingTheirsFunc: func(ctx context.Context, entries []backend.StatusEntry) error {
			done <- struct{}{}
			return nil
		},
	}
	s := &Status{entries: []backend.StatusEntry{{Name: "a.go"}}}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}, ViewportRows: 24, ViewportCols: 80}

	s.OnKey(ctx, keyChar('T'))
	<-done
}
