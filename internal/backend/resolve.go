package backend

import "context"

// ResolveTakingOurs resolves the given (or, if empty, all unmerged)
// entries by checking out the "ours" side.
func (c *Client) ResolveTakingOurs(ctx context.Context, entries []StatusEntry) error {
	return c.resolve(ctx, "--ours", entries)
}

// ResolveTakingTheirs resolves the given (or, if empty, all unmerged)
// entries by checking out the "theirs" side.
func (c *Client) ResolveTakingTheirs(ctx context.Context, entries []StatusEntry) error {
	return c.resolve(ctx, "--theirs", entries)
}

func (c *Client) resolve(ctx context.Context, side string, entries []StatusEntry) error {
	if len(entries) == 0 {
		return c.run(ctx, "resolve", "checkout", side, ".")
	}
	unmerged := filterUnmerged(entries)
	if len(unmerged) == 0 {
		return nil
	}
	args := append([]string{"checkout", side, "--"}, names(unmerged)...)
	return c.run(ctx, "resolve", args...)
}

func filterUnmerged(entries []StatusEntry) []StatusEntry {
	out := make([]StatusEntry, 0, len(entries))
	for _, e := range entries {
		if e.Status == Unmerged {
			out = append(out, e)
		}
	}
	return out
}
