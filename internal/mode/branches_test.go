package mode

import (
	"context"
	"testing"

	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchesOnResponseSelectsCheckedOut(t *testing.T) {
	b := &Branches{}
	ctx := &Context{Ctx: context.Background(), Backend: &backend.MockBackend{}, EventSender: &fakeSender{}}

	b.OnResponse(ctx, BranchesResponse{Entries: []backend.BranchEntry{
		{Name: "feature", CheckedOut: false},
		{Name: "main", CheckedOut: true},
	}})

	require.Len(t, b.entries, 2)
	assert.Equal(t, 1, b.sel.Cursor())
}

func TestBranchesEnterOnNonCurrentBranchChecksOutThenForwardsToLog(t *testing.T) {
	done := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		CheckoutFunc: func(ctx context.Context, revision string) error {
			assert.Equal(t, "feature", revision)
			done <- struct{}{}
			return nil
		},
	}
	var changes []Kind
	sender := &capturingSender{onChange: func(info ChangeInfo) { changes = append(changes, info.Kind) }}
	b := &Branches{entries: []backend.BranchEntry{{Name: "feature"}, {Name: "main", CheckedOut: true}}}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: sender, ViewportRows: 24}

	b.OnKey(ctx, keys.Key{Kind: keys.Enter})
	<-done

	assert.Contains(t, changes, KindLog)
}

func TestBranchesEnterOnCurrentBranchForwardsWithoutCheckout(t *testing.T) {
	mb := &backend.MockBackend{
		CheckoutFunc: func(ctx context.Context, revision string) error {
			t.Fatal("checkout should not be called for the current branch")
			return nil
		},
	}
	var changes []Kind
	sender := &capturingSender{onChange: func(info ChangeInfo) { changes = append(changes, info.Kind) }}
	b := &Branches{entries: []backend.BranchEntry{{Name: "main", CheckedOut: true}}}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: sender, ViewportRows: 24}

	b.OnKey(ctx, keys.Key{Kind: keys.Enter})

	require.Contains(t, changes, KindLog)
}

func TestBranchesDeleteRemovesEntryOptimistically(t *testing.T) {
	done := make(chan struct{}, 1)
	mb := &backend.MockBackend{
		DeleteBranchFunc: func(ctx context.Context, name string, force bool) error {
			assert.Equal(t, "feature", name)
			assert.False(t, force)
			done <- struct{}{}
			return nil
		},
		BranchesFunc: func(ctx context.Context) ([]backend.BranchEntry, error) { return nil, nil },
	}
	b := &Branches{entries: []backend.BranchEntry{{Name: "feature"}, {Name: "main"}}}
	ctx := &Context{Ctx: context.Background(), Backend: mb, EventSender: &fakeSender{}, ViewportRows: 24}

	b.OnKey(ctx, keyChar('d'))
	<-done
	require.Len(t, b.entries, 1)
	assert.Equal(t, "main", b.entries[0].Name)
}
