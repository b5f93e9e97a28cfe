package backend

import (
	"context"
	"sort"
	"strings"
)

const branchFormat = "--format=%(refname:short)%20%(HEAD)"

// Branches returns the local branches, sorted by name, with the
// checked-out branch flagged.
func (c *Client) Branches(ctx context.Context) ([]BranchEntry, error) {
	raw, err := c.output(ctx, "branch", "--list", branchFormat)
	if err != nil {
		return nil, NewError("branches", "branch --list "+branchFormat, err)
	}
	var entries []BranchEntry
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ' ')
		if idx < 0 {
			entries = append(entries, BranchEntry{Name: line})
			continue
		}
		entries = append(entries, BranchEntry{
			Name:       line[:idx],
			CheckedOut: line[idx+1:] == "*",
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Checkout switches the work tree to revision.
func (c *Client) Checkout(ctx context.Context, revision string) error {
	return c.run(ctx, "checkout", "checkout", revision)
}

// Merge merges revision into the current branch with --no-ff.
func (c *Client) Merge(ctx context.Context, revision string) error {
	return c.run(ctx, "merge", "merge", "--no-ff", revision)
}

// NewBranch creates and checks out a new branch.
func (c *Client) NewBranch(ctx context.Context, name string) error {
	return c.run(ctx, "new-branch", "checkout", "-b", name)
}

// DeleteBranch deletes a branch, forcing when force is true.
func (c *Client) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "--delete"
	if force {
		flag = "-D"
	}
	return c.run(ctx, "delete-branch", "branch", flag, name)
}
