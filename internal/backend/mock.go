package backend

import "context"

// MockBackend implements Backend with one overridable func field per
// method, mirroring the teacher's pkg/git/mock.go pattern. Unset fields
// return a zero value and a nil error.
type MockBackend struct {
	StatusFunc              func(ctx context.Context) (*StatusInfo, error)
	CommitFunc              func(ctx context.Context, message string, entries []StatusEntry, amend bool) error
	DiscardFunc             func(ctx context.Context, entries []StatusEntry) error
	DiffFunc                func(ctx context.Context, revision string, entries []StatusEntry) (string, error)
	ResolveTakingOursFunc   func(ctx context.Context, entries []StatusEntry) error
	ResolveTakingTheirsFunc func(ctx context.Context, entries []StatusEntry) error
	LogFunc                 func(ctx context.Context, skip, length int) ([]LogEntry, error)
	RevisionDetailsFunc     func(ctx context.Context, revision string) (*RevisionInfo, error)
	BranchesFunc            func(ctx context.Context) ([]BranchEntry, error)
	CheckoutFunc            func(ctx context.Context, revision string) error
	MergeFunc               func(ctx context.Context, revision string) error
	NewBranchFunc           func(ctx context.Context, name string) error
	DeleteBranchFunc        func(ctx context.Context, name string, force bool) error
	TagsFunc                func(ctx context.Context) ([]TagEntry, error)
	NewTagFunc              func(ctx context.Context, name string) error
	DeleteTagFunc           func(ctx context.Context, name string) error
	StashFunc               func(ctx context.Context, message string, entries []StatusEntry) error
	StashListFunc           func(ctx context.Context) ([]StashEntry, error)
	StashPopFunc            func(ctx context.Context, index int) error
	StashApplyFunc          func(ctx context.Context, index int) error
	StashDropFunc           func(ctx context.Context, index int) error
	FetchFunc               func(ctx context.Context) error
	PullFunc                func(ctx context.Context) error
	PushFunc                func(ctx context.Context) error
	ResetFunc               func(ctx context.Context, revision string) error
	RemoteBranchFunc        func(ctx context.Context) (string, error)
}

var _ Backend = (*MockBackend)(nil)

func (m *MockBackend) Status(ctx context.Context) (*StatusInfo, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return &StatusInfo{}, nil
}

func (m *MockBackend) Commit(ctx context.Context, message string, entries []StatusEntry, amend bool) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx, message, entries, amend)
	}
	return nil
}

func (m *MockBackend) Discard(ctx context.Context, entries []StatusEntry) error {
	if m.DiscardFunc != nil {
		return m.DiscardFunc(ctx, entries)
	}
	return nil
}

func (m *MockBackend) Diff(ctx context.Context, revision string, entries []StatusEntry) (string, error) {
	if m.DiffFunc != nil {
		return m.DiffFunc(ctx, revision, entries)
	}
	return "", nil
}

func (m *MockBackend) ResolveTakingOurs(ctx context.Context, entries []StatusEntry) error {
	if m.ResolveTakingOursFunc != nil {
		return m.ResolveTakingOursFunc(ctx, entries)
	}
	return nil
}

func (m *MockBackend) ResolveTakingTheirs(ctx context.Context, entries []StatusEntry) error {
	if m.ResolveTakingTheirsFunc != nil {
		return m.ResolveTakingTheirsFunc(ctx, entries)
	}
	return nil
}

func (m *MockBackend) Log(ctx context.Context, skip, length int) ([]LogEntry, error) {
	if m.LogFunc != nil {
		return m.LogFunc(ctx, skip, length)
	}
	return nil, nil
}

func (m *MockBackend) RevisionDetails(ctx context.Context, revision string) (*RevisionInfo, error) {
	if m.RevisionDetailsFunc != nil {
		return m.RevisionDetailsFunc(ctx, revision)
	}
	return &RevisionInfo{}, nil
}

func (m *MockBackend) Branches(ctx context.Context) ([]BranchEntry, error) {
	if m.BranchesFunc != nil {
		return m.BranchesFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) Checkout(ctx context.Context, revision string) error {
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, revision)
	}
	return nil
}

func (m *MockBackend) Merge(ctx context.Context, revision string) error {
	if m.MergeFunc != nil {
		return m.MergeFunc(ctx, revision)
	}
	return nil
}

func (m *MockBackend) NewBranch(ctx context.Context, name string) error {
	if m.NewBranchFunc != nil {
		return m.NewBranchFunc(ctx, name)
	}
	return nil
}

func (m *MockBackend) DeleteBranch(ctx context.Context, name string, force bool) error {
	if m.DeleteBranchFunc != nil {
		return m.DeleteBranchFunc(ctx, name, force)
	}
	return nil
}

func (m *MockBackend) Tags(ctx context.Context) ([]TagEntry, error) {
	if m.TagsFunc != nil {
		return m.TagsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) NewTag(ctx context.Context, name string) error {
	if m.NewTagFunc != nil {
		return m.NewTagFunc(ctx, name)
	}
	return nil
}

func (m *MockBackend) DeleteTag(ctx context.Context, name string) error {
	if m.DeleteTagFunc != nil {
		return m.DeleteTagFunc(ctx, name)
	}
	return nil
}

func (m *MockBackend) Stash(ctx context.Context, message string, entries []StatusEntry) error {
	if m.StashFunc != nil {
		return m.StashFunc(ctx, message, entries)
	}
	return nil
}

func (m *MockBackend) StashList(ctx context.Context) ([]StashEntry, error) {
	if m.StashListFunc != nil {
		return m.StashListFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) StashPop(ctx context.Context, index int) error {
	if m.StashPopFunc != nil {
		return m.StashPopFunc(ctx, index)
	}
	return nil
}

func (m *MockBackend) StashApply(ctx context.Context, index int) error {
	if m.StashApplyFunc != nil {
		return m.StashApplyFunc(ctx, index)
	}
	return nil
}

func (m *MockBackend) StashDrop(ctx context.Context, index int) error {
	if m.StashDropFunc != nil {
		return m.StashDropFunc(ctx, index)
	}
	return nil
}

func (m *MockBackend) Fetch(ctx context.Context) error {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil
}

func (m *MockBackend) Pull(ctx context.Context) error {
	if m.PullFunc != nil {
		return m.PullFunc(ctx)
	}
	return nil
}

func (m *MockBackend) Push(ctx context.Context) error {
	if m.PushFunc != nil {
		return m.PushFunc(ctx)
	}
	return nil
}

func (m *MockBackend) Reset(ctx context.Context, revision string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, revision)
	}
	return nil
}

func (m *MockBackend) RemoteBranch(ctx context.Context) (string, error) {
	if m.RemoteBranchFunc != nil {
		return m.RemoteBranchFunc(ctx)
	}
	return "", nil
}
