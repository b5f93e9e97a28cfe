package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommitMessage(t *testing.T) {
	assert.NoError(t, validateCommitMessage("fix bug"))
	assert.ErrorIs(t, validateCommitMessage(""), ErrEmptyMessage)
	assert.ErrorIs(t, validateCommitMessage("   \n\t"), ErrEmptyMessage)
	assert.ErrorIs(t, validateCommitMessage("bad\x00message"), ErrInvalidMessage)
}

func TestCommitWithNoEntriesStagesEverything(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.Commit(context.Background(), "fix bug", nil, false)

	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"git", "add", "--all"}, calls[0])
	assert.Equal(t, []string{"git", "commit", "-m", "fix bug"}, calls[1])
}

func TestCommitWithEntriesStagesOnlyThose(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.Commit(context.Background(), "fix bug", []StatusEntry{{Name: "a.go"}, {Name: "b.go"}}, false)

	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"git", "add", "--", "a.go", "b.go"}, calls[0])
}

func TestCommitRejectsEmptyMessageWithoutShellingOut(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.Commit(context.Background(), "", nil, false)

	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, calls)
}

func TestCommitAmendSkipsMessageValidationAndUsesNoEdit(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.Commit(context.Background(), "", nil, true)

	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"git", "add", "--all"}, calls[0])
	assert.Equal(t, []string{"git", "commit", "--amend", "--no-edit"}, calls[1])
}
