package backend

import (
	"context"
	"strconv"
	"strings"
)

// Stash stashes the given entries (or everything, when entries is nil)
// with an optional message; an empty message stashes without -m.
func (c *Client) Stash(ctx context.Context, message string, entries []StatusEntry) error {
	args := []string{"push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	if len(entries) > 0 {
		args = append(args, "--")
		args = append(args, names(entries)...)
	}
	return c.run(ctx, "stash", append([]string{"stash"}, args...)...)
}

// StashList returns the stash list, newest first, tokenized per
// ParseStashLine.
func (c *Client) StashList(ctx context.Context) ([]StashEntry, error) {
	raw, err := c.output(ctx, "stash", "list")
	if err != nil {
		return nil, NewError("stash-list", "stash list", err)
	}
	var entries []StashEntry
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		if entry, ok := ParseStashLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// StashPop pops the stash at index.
func (c *Client) StashPop(ctx context.Context, index int) error {
	return c.run(ctx, "stash-pop", "stash", "pop", stashRef(index))
}

// StashApply applies (without removing) the stash at index.
func (c *Client) StashApply(ctx context.Context, index int) error {
	return c.run(ctx, "stash-apply", "stash", "apply", stashRef(index))
}

// StashDrop removes the stash at index without applying it.
func (c *Client) StashDrop(ctx context.Context, index int) error {
	return c.run(ctx, "stash-drop", "stash", "drop", stashRef(index))
}

func stashRef(index int) string {
	return "stash@{" + strconv.Itoa(index) + "}"
}
