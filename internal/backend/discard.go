package backend

import "context"

// Discard reverts the given entries to HEAD. A nil/empty slice means
// "discard everything", translated to `git reset --hard && git clean -d
// --force` exactly as original_source/src/backend/git.rs::discard does
// when entries.is_empty().
func (c *Client) Discard(ctx context.Context, entries []StatusEntry) error {
	if len(entries) == 0 {
		if err := c.run(ctx, "discard", "reset", "--hard"); err != nil {
			return err
		}
		return c.run(ctx, "discard", "clean", "-d", "--force")
	}

	var clean, checkout []string
	for _, e := range entries {
		switch e.Status {
		case Untracked, Added:
			clean = append(clean, e.Name)
		default:
			checkout = append(checkout, e.Name)
		}
	}
	if len(clean) > 0 {
		args := append([]string{"-d", "--force", "--"}, clean...)
		if err := c.run(ctx, "discard", append([]string{"clean"}, args...)...); err != nil {
			return err
		}
	}
	if len(checkout) > 0 {
		args := append([]string{"checkout", "HEAD", "--"}, checkout...)
		if err := c.run(ctx, "discard", args...); err != nil {
			return err
		}
	}
	return nil
}
