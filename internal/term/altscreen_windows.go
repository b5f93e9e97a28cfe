//go:build windows

package term

import "os"

// WatchResize has no SIGWINCH equivalent on Windows; it returns a no-op
// stop func and never calls onResize.
func WatchResize(f *os.File, onResize func(width, height int)) (stop func()) {
	return func() {}
}
