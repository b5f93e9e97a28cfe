package backend

import (
	"context"
	"strconv"
	"strings"
)

const logFormat = "--format=format:%x00%h%x00%as%x00%aN%x00%D%x00%s"

// Log returns up to length commits starting skip commits back from HEAD,
// NUL-delimited per original_source/src/backend/git.rs::log.
func (c *Client) Log(ctx context.Context, skip, length int) ([]LogEntry, error) {
	args := []string{"log", logFormat, "--skip=" + strconv.Itoa(skip), "-n", strconv.Itoa(length)}
	raw, err := c.output(ctx, args...)
	if err != nil {
		return nil, NewError("log", strings.Join(args, " "), err)
	}
	return parseLog(raw), nil
}

func parseLog(raw string) []LogEntry {
	var entries []LogEntry
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(strings.TrimPrefix(line, "\x00"), "\x00")
		if len(fields) < 5 {
			continue
		}
		entries = append(entries, LogEntry{
			Hash:    fields[0],
			Date:    fields[1],
			Author:  fields[2],
			Refs:    fields[3],
			Subject: fields[4],
		})
	}
	return entries
}
