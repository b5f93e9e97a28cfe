//go:build !windows

package term

import (
	"golang.org/x/sys/unix"
)

// pendingInputFunc is overridable in tests.
var pendingInputFunc = defaultPendingInput

// PendingInput reports whether fd has input ready to read without
// blocking. The key decoder does not call it: it tells a lone ESC from
// the start of a CSI sequence by looking only at its own read buffer.
func PendingInput(fd uintptr) (bool, error) {
	return pendingInputFunc(fd)
}

func defaultPendingInput(fd uintptr) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetPendingInputFunc overrides PendingInput's implementation; used by
// tests. Passing nil restores the default.
func SetPendingInputFunc(f func(fd uintptr) (bool, error)) {
	if f == nil {
		pendingInputFunc = defaultPendingInput
		return
	}
	pendingInputFunc = f
}
