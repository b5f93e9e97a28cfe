package backend

import "context"

// Fetch runs `git fetch --all --prune`. Not reached from any mode (see
// DESIGN.md) — kept for interface completeness with the backend surface
// spec.md §6 lists.
func (c *Client) Fetch(ctx context.Context) error {
	return c.run(ctx, "fetch", "fetch", "--all", "--prune")
}

// Pull runs `git pull --all`. Not reached from any mode.
func (c *Client) Pull(ctx context.Context) error {
	return c.run(ctx, "pull", "pull", "--all")
}

// Push runs `git push`. Not reached from any mode.
func (c *Client) Push(ctx context.Context) error {
	return c.run(ctx, "push", "push")
}
