package backend

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrEmptyMessage is returned by Commit when message is blank after
// trimming, matching original_source's validate_commit_message.
var ErrEmptyMessage = errors.New("commit message must not be empty")

// ErrInvalidMessage is returned when message is not valid UTF-8 or
// contains a NUL byte.
var ErrInvalidMessage = errors.New("commit message is not valid text")

func validateCommitMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if !utf8.ValidString(message) || strings.ContainsRune(message, 0) {
		return ErrInvalidMessage
	}
	return nil
}

// Commit stages the named entries (or everything, when entries is nil)
// and commits with message. When amend is true, message may be empty:
// the commit is amended in place with --no-edit instead of being given
// a new message.
func (c *Client) Commit(ctx context.Context, message string, entries []StatusEntry, amend bool) error {
	if !amend {
		if err := validateCommitMessage(message); err != nil {
			return err
		}
	}
	if len(entries) == 0 {
		if err := c.run(ctx, "commit", "add", "--all"); err != nil {
			return err
		}
	} else {
		args := append([]string{"add", "--"}, names(entries)...)
		if err := c.run(ctx, "commit", args...); err != nil {
			return err
		}
	}
	if amend {
		return c.run(ctx, "commit", "commit", "--amend", "--no-edit")
	}
	return c.run(ctx, "commit", "commit", "-m", message)
}

func names(entries []StatusEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
