package backend

import "context"

// Small, focused interfaces per concern, composed into Backend — the
// same "no monolithic client interface" convention the teacher's
// pkg/git/interfaces.go follows.

type StatusReader interface {
	Status(ctx context.Context) (*StatusInfo, error)
}

type Committer interface {
	Commit(ctx context.Context, message string, entries []StatusEntry, amend bool) error
}

type Discarder interface {
	Discard(ctx context.Context, entries []StatusEntry) error
}

type DiffReader interface {
	Diff(ctx context.Context, revision string, entries []StatusEntry) (string, error)
}

type Resolver interface {
	ResolveTakingOurs(ctx context.Context, entries []StatusEntry) error
	ResolveTakingTheirs(ctx context.Context, entries []StatusEntry) error
}

type LogReader interface {
	Log(ctx context.Context, skip, length int) ([]LogEntry, error)
}

type RevisionReader interface {
	RevisionDetails(ctx context.Context, revision string) (*RevisionInfo, error)
}

type BranchReader interface {
	Branches(ctx context.Context) ([]BranchEntry, error)
}

type BranchWriter interface {
	Checkout(ctx context.Context, revision string) error
	Merge(ctx context.Context, revision string) error
	NewBranch(ctx context.Context, name string) error
	DeleteBranch(ctx context.Context, name string, force bool) error
}

type TagOps interface {
	Tags(ctx context.Context) ([]TagEntry, error)
	NewTag(ctx context.Context, name string) error
	DeleteTag(ctx context.Context, name string) error
}

type StashOps interface {
	Stash(ctx context.Context, message string, entries []StatusEntry) error
	StashList(ctx context.Context) ([]StashEntry, error)
	StashPop(ctx context.Context, index int) error
	StashApply(ctx context.Context, index int) error
	StashDrop(ctx context.Context, index int) error
}

type RemoteOps interface {
	Fetch(ctx context.Context) error
	Pull(ctx context.Context) error
	Push(ctx context.Context) error
}

type ResetOps interface {
	Reset(ctx context.Context, revision string) error
	RemoteBranch(ctx context.Context) (string, error)
}

// Backend is the full surface a mode's ModeContext can call through.
type Backend interface {
	StatusReader
	Committer
	Discarder
	DiffReader
	Resolver
	LogReader
	RevisionReader
	BranchReader
	BranchWriter
	TagOps
	StashOps
	RemoteOps
	ResetOps
}

var _ Backend = (*Client)(nil)
