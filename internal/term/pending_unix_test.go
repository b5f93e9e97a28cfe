//go:build !windows

package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingInputOverride(t *testing.T) {
	defer SetPendingInputFunc(nil)
	SetPendingInputFunc(func(fd uintptr) (bool, error) { return true, nil })
	got, err := PendingInput(0)
	assert.NoError(t, err)
	assert.True(t, got)
}
