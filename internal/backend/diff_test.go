package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffWorkingTreeNoEntries(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("diff text", &calls)

	out, err := c.Diff(context.Background(), "", nil)

	require.NoError(t, err)
	assert.Equal(t, "diff text", out)
	assert.Equal(t, []string{"git", "diff", "-z"}, calls[0])
}

func TestDiffWorkingTreeWithEntries(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("diff text", &calls)

	_, err := c.Diff(context.Background(), "", []StatusEntry{{Name: "a.go"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "diff", "--", "a.go"}, calls[0])
}

func TestDiffRevision(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("diff text", &calls)

	_, err := c.Diff(context.Background(), "deadbeef", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "diff", "deadbeef^@", "deadbeef"}, calls[0])
}

func TestDiffRevisionWithEntries(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("diff text", &calls)

	_, err := c.Diff(context.Background(), "deadbeef", []StatusEntry{{Name: "a.go"}, {Name: "b.go"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "diff", "deadbeef^@", "deadbeef", "--", "a.go", "b.go"}, calls[0])
}
