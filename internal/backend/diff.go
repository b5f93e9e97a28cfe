package backend

import "context"

// Diff returns the diff text for a revision (parent..revision) or, when
// revision is empty, the working-tree diff, optionally restricted to
// entries.
func (c *Client) Diff(ctx context.Context, revision string, entries []StatusEntry) (string, error) {
	var args []string
	if revision != "" {
		args = []string{"diff", revision + "^@", revision}
	} else {
		args = []string{"diff"}
		if len(entries) == 0 {
			args = append(args, "-z")
		}
	}
	if len(entries) > 0 {
		args = append(args, "--")
		args = append(args, names(entries)...)
	}
	return c.output(ctx, args...)
}
