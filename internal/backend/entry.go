package backend

import "strings"

// FileStatus classifies a single status/diff-tree entry, mirroring git's
// one-letter porcelain status codes.
type FileStatus int

const (
	Clean FileStatus = iota
	Modified
	Added
	Deleted
	Renamed
	Untracked
	Copied
	Unmerged
	Unknown
)

func (s FileStatus) String() string {
	switch s {
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	case Untracked:
		return "untracked"
	case Copied:
		return "copied"
	case Unmerged:
		return "unmerged"
	case Clean:
		return "clean"
	default:
		return "unknown"
	}
}

// ParseFileStatus maps the first byte of a git status code to a FileStatus.
func ParseFileStatus(raw string) FileStatus {
	if raw == "" {
		return Unknown
	}
	switch raw[0] {
	case 'M':
		return Modified
	case 'A':
		return Added
	case 'D':
		return Deleted
	case 'R':
		return Renamed
	case '?':
		return Untracked
	case 'C':
		return Copied
	case 'U':
		return Unmerged
	case ' ':
		return Clean
	default:
		return Unknown
	}
}

// StatusEntry is a single working-tree/index file as reported by `git
// status --branch --no-rename --null`.
type StatusEntry struct {
	Status FileStatus
	Raw    string
	Name   string
}

// StatusInfo is the parsed result of a status query.
type StatusInfo struct {
	Branch   string
	Upstream string
	Ahead    int
	Behind   int
	Entries  []StatusEntry
}

// LogEntry is a single one-line commit summary.
type LogEntry struct {
	Hash    string
	Date    string
	Author  string
	Refs    string
	Subject string
}

// RevisionInfo is the full message and changed-file list for one commit.
type RevisionInfo struct {
	Message string
	Entries []StatusEntry
}

// BranchEntry is a single local branch.
type BranchEntry struct {
	Name       string
	CheckedOut bool
}

// TagEntry is a single tag.
type TagEntry struct {
	Name string
}

// StashEntry is a single stash, tokenized from `git stash list`.
type StashEntry struct {
	Index   int
	Branch  string
	Message string
	Raw     string
}

// ParseStashLine tokenizes one line of `git stash list` output, of the
// form "stash@{N}: On <branch>: <message>" or "stash@{N}: WIP on
// <branch>: <message>".
func ParseStashLine(line string) (StashEntry, bool) {
	entry := StashEntry{Raw: line}

	open := strings.Index(line, "stash@{")
	if open != 0 {
		return entry, false
	}
	close := strings.IndexByte(line, '}')
	if close < 0 {
		return entry, false
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, line[open:close])
	index := 0
	for _, d := range digits {
		index = index*10 + int(d-'0')
	}
	entry.Index = index

	rest := line[close+1:]
	rest = strings.TrimPrefix(rest, ": ")

	var prefix string
	switch {
	case strings.HasPrefix(rest, "On "):
		prefix = "On "
	case strings.HasPrefix(rest, "WIP on "):
		prefix = "WIP on "
	default:
		entry.Message = rest
		return entry, true
	}
	rest = rest[len(prefix):]
	sep := strings.Index(rest, ": ")
	if sep < 0 {
		entry.Branch = rest
		return entry, true
	}
	entry.Branch = rest[:sep]
	entry.Message = rest[sep+2:]
	return entry, true
}
