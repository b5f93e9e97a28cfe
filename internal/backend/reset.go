package backend

import "context"

// Reset hard-resets to revision, or to the current branch's upstream
// when revision is empty. Not reached from any mode (see DESIGN.md).
func (c *Client) Reset(ctx context.Context, revision string) error {
	if revision == "" {
		upstream, err := c.RemoteBranch(ctx)
		if err != nil {
			return err
		}
		revision = upstream
	}
	return c.run(ctx, "reset", "reset", "--hard", revision)
}

// RemoteBranch returns the upstream ref of the current branch
// (<remote>/<branch>).
func (c *Client) RemoteBranch(ctx context.Context) (string, error) {
	upstream, err := c.output(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil {
		return "", NewError("remote-branch", "rev-parse --abbrev-ref --symbolic-full-name @{u}", err)
	}
	return trimNL(upstream), nil
}

func trimNL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
