package backend

import (
	"context"
	"os/exec"
)

// fakeExecCommand builds a Client whose execCommand ignores the real git
// binary and instead runs `echo -n <output>`, recording every invocation's
// arguments, mirroring the teacher's git_test.go fakeExecCommand helper.
func fakeExecCommand(output string, calls *[][]string) *Client {
	return &Client{
		dir: "/repo",
		execCommand: func(ctx context.Context, dir, name string, arg ...string) *exec.Cmd {
			*calls = append(*calls, append([]string{name}, arg...))
			return exec.Command("echo", "-n", output)
		},
	}
}

// fakeExecCommandErr builds a Client whose commands always fail.
func fakeExecCommandErr(calls *[][]string) *Client {
	return &Client{
		dir: "/repo",
		execCommand: func(ctx context.Context, dir, name string, arg ...string) *exec.Cmd {
			*calls = append(*calls, append([]string{name}, arg...))
			return exec.Command("false")
		},
	}
}

// fakeExecCommandSeq builds a Client whose successive invocations return
// outputs[0], outputs[1], ... in order, for operations that shell out more
// than once (e.g. RevisionDetails).
func fakeExecCommandSeq(outputs []string, calls *[][]string) *Client {
	i := 0
	return &Client{
		dir: "/repo",
		execCommand: func(ctx context.Context, dir, name string, arg ...string) *exec.Cmd {
			*calls = append(*calls, append([]string{name}, arg...))
			out := ""
			if i < len(outputs) {
				out = outputs[i]
			}
			i++
			return exec.Command("echo", "-n", out)
		},
	}
}
