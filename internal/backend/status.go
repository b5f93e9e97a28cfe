package backend

import (
	"context"
	"strconv"
	"strings"
)

// Status runs `git status --branch --no-rename --null` and parses the
// NUL-delimited porcelain v2-less branch+entries output.
func (c *Client) Status(ctx context.Context) (*StatusInfo, error) {
	raw, err := c.output(ctx, "status", "--branch", "--no-rename", "--null")
	if err != nil {
		return nil, NewError("status", "status --branch --no-rename --null", err)
	}
	return parseStatus(raw), nil
}

func parseStatus(raw string) *StatusInfo {
	fields := strings.Split(raw, "\x00")
	info := &StatusInfo{}
	if len(fields) == 0 {
		return info
	}
	header := fields[0]
	header = strings.TrimPrefix(header, "## ")
	parseBranchHeader(header, info)

	for _, f := range fields[1:] {
		if f == "" {
			continue
		}
		if len(f) < 3 {
			continue
		}
		code := f[:2]
		name := strings.TrimSpace(f[3:])
		info.Entries = append(info.Entries, StatusEntry{
			Status: ParseFileStatus(code),
			Raw:    code,
			Name:   name,
		})
	}
	return info
}

// parseBranchHeader parses lines such as:
//
//	main...origin/main [ahead 1, behind 2]
//	main
//	HEAD (no branch)
func parseBranchHeader(header string, info *StatusInfo) {
	rest := header
	if idx := strings.Index(rest, "..."); idx >= 0 {
		info.Branch = rest[:idx]
		rest = rest[idx+3:]
	} else {
		info.Branch = rest
		return
	}

	upstream := rest
	if br := strings.Index(rest, " ["); br >= 0 {
		upstream = rest[:br]
		tracking := rest[br+2:]
		tracking = strings.TrimSuffix(tracking, "]")
		for _, part := range strings.Split(tracking, ", ") {
			part = strings.TrimSpace(part)
			switch {
			case strings.HasPrefix(part, "ahead "):
				info.Ahead, _ = strconv.Atoi(strings.TrimPrefix(part, "ahead "))
			case strings.HasPrefix(part, "behind "):
				info.Behind, _ = strconv.Atoi(strings.TrimPrefix(part, "behind "))
			}
		}
	}
	info.Upstream = upstream
}
