package backend

import (
	"context"
	"strings"
)

// RevisionDetails returns the full commit message and changed-file list
// for revision.
func (c *Client) RevisionDetails(ctx context.Context, revision string) (*RevisionInfo, error) {
	message, err := c.output(ctx, "show", "-s", "--format=%B", "--no-renames", revision)
	if err != nil {
		return nil, NewError("revision-details", "show -s --format=%B --no-renames "+revision, err)
	}
	raw, err := c.output(ctx, "diff-tree", "--no-commit-id", "--name-status", "-r", "-z", revision)
	if err != nil {
		return nil, NewError("revision-details", "diff-tree --no-commit-id --name-status -r -z "+revision, err)
	}
	return &RevisionInfo{
		Message: strings.TrimRight(message, "\n"),
		Entries: parseNameStatus(raw),
	}, nil
}

// parseNameStatus splits NUL-delimited alternating status/name pairs
// from `git diff-tree --name-status -z` (or --name-status -z in general).
func parseNameStatus(raw string) []StatusEntry {
	fields := strings.Split(raw, "\x00")
	var entries []StatusEntry
	for i := 0; i+1 < len(fields); i += 2 {
		code := fields[i]
		name := fields[i+1]
		if code == "" && name == "" {
			continue
		}
		entries = append(entries, StatusEntry{
			Status: ParseFileStatus(code),
			Raw:    code,
			Name:   name,
		})
	}
	return entries
}
