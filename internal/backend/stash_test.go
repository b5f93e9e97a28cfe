package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStashListTokenizesLines(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("stash@{0}: WIP on main: wip work\nstash@{1}: On feature: manual message\n", &calls)

	entries, err := c.StashList(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "main", entries[0].Branch)
	assert.Equal(t, 1, entries[1].Index)
	assert.Equal(t, []string{"git", "stash", "list"}, calls[0])
}

func TestStashPopUsesStashRef(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.StashPop(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "stash", "pop", "stash@{2}"}, calls[0])
}

func TestStashApplyUsesStashRef(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.StashApply(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "stash", "apply", "stash@{1}"}, calls[0])
}

func TestStashDropUsesStashRef(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.StashDrop(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "stash", "drop", "stash@{0}"}, calls[0])
}

func TestStashWithEntriesPushesNamedPaths(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.Stash(context.Background(), "", []StatusEntry{{Name: "a.go"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "stash", "push", "--", "a.go"}, calls[0])
}

func TestStashWithNoEntriesPushesEverything(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.Stash(context.Background(), "", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "stash", "push"}, calls[0])
}

func TestStashWithMessageAddsDashM(t *testing.T) {
	var calls [][]string
	c := fakeExecCommand("", &calls)

	err := c.Stash(context.Background(), "wip", []StatusEntry{{Name: "a.go"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"git", "stash", "push", "-m", "wip", "--", "a.go"}, calls[0])
}
