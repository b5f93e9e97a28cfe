package mode

import (
	"context"
	"testing"

	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogOnEnterFetchesFirstPage(t *testing.T) {
	done := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		LogFunc: func(ctx context.Context, skip, limit int) ([]backend.LogEntry, error) {
			assert.Equal(t, 0, skip)
			assert.Equal(t, logPageSize, limit)
			defer func() { done <- struct{}{} }()
			return []backend.LogEntry{{Hash: "abc123", Subject: "first"}}, nil
		},
	}
	m := &Log{}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}}
	m.OnEnter(ctx, ChangeInfo{Kind: KindLog})
	<-done
	assert.True(t, m.IsWaitingResponse())
}

func TestLogOnResponseAppendsWhenPaging(t *testing.T) {
	m := &Log{entries: []backend.LogEntry{{Hash: "a"}}}
	ctx := &Context{Ctx: context.Background(), Backend: &backend.MockBackend{}, EventSender: &fakeSender{}}

	m.OnResponse(ctx, LogResponse{Entries: []backend.LogEntry{{Hash: "b"}}, Append: true})

	require.Len(t, m.entries, 2)
	assert.Equal(t, "b", m.entries[1].Hash)
	assert.False(t, m.atEnd)
}

func TestLogOnResponseEmptyAppendMarksAtEnd(t *testing.T) {
	m := &Log{entries: []backend.LogEntry{{Hash: "a"}}, waiting: true}
	ctx := &Context{Ctx: context.Background(), Backend: &backend.MockBackend{}, EventSender: &fakeSender{}}

	m.OnResponse(ctx, LogResponse{Append: true})

	assert.True(t, m.atEnd)
	require.Len(t, m.entries, 1)
	assert.False(t, m.waiting)
}

func TestLogCheckoutRefetchesFirstPage(t *testing.T) {
	checkedOut := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		CheckoutFunc: func(ctx context.Context, revision string) error {
			assert.Equal(t, "deadbeef", revision)
			checkedOut <- struct{}{}
			return nil
		},
		LogFunc: func(ctx context.Context, skip, limit int) ([]backend.LogEntry, error) {
			assert.Equal(t, 0, skip)
			return []backend.LogEntry{{Hash: "deadbeef"}}, nil
		},
	}
	m := &Log{entries: []backend.LogEntry{{Hash: "deadbeef"}}, atEnd: true}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}}

	m.OnKey(ctx, keyChar('c'))
	<-checkedOut
	assert.True(t, m.IsWaitingResponse())
}

func TestLogEnterKeySendsRevisionDetails(t *testing.T) {
	m := &Log{entries: []backend.LogEntry{{Hash: "deadbeef"}}}
	var sent ChangeInfo
	sender := &capturingSender{onChange: func(info ChangeInfo) { sent = info }}
	ctx := &Context{Ctx: context.Background(), Backend: &backend.MockBackend{}, EventSender: sender}

	m.OnKey(ctx, keys.Key{Kind: keys.Enter})

	assert.Equal(t, KindRevisionDetails, sent.Kind)
	assert.Equal(t, "deadbeef", sent.Revision)
}
