//go:build !windows

package term

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// WatchResize starts a goroutine that calls onResize whenever the
// terminal is resized (SIGWINCH), with the new width/height read via
// Size. It returns a stop func.
func WatchResize(f *os.File, onResize func(width, height int)) (stop func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sig:
				w, h := Size(f, 80, 24)
				onResize(w, h)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
