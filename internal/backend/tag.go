package backend

import (
	"context"
	"sort"
	"strings"
)

// Tags returns all tags, sorted by name.
func (c *Client) Tags(ctx context.Context) ([]TagEntry, error) {
	raw, err := c.output(ctx, "tag", "--list", "--format=%(refname:short)")
	if err != nil {
		return nil, NewError("tags", "tag --list", err)
	}
	var entries []TagEntry
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		entries = append(entries, TagEntry{Name: line})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// NewTag creates (or force-moves) a tag at HEAD.
func (c *Client) NewTag(ctx context.Context, name string) error {
	return c.run(ctx, "new-tag", "tag", "--force", name)
}

// DeleteTag deletes a tag.
func (c *Client) DeleteTag(ctx context.Context, name string) error {
	return c.run(ctx, "delete-tag", "tag", "--delete", name)
}
