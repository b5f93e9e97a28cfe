package widget

import (
	"testing"

	"github.com/bmf-san/vico/internal/keys"
	"github.com/stretchr/testify/assert"
)

func TestOutputSetResetsScroll(t *testing.T) {
	var o Output
	o.Set("a\nb\nc")
	o.OnKey(2, keys.Key{Kind: keys.Down})
	assert.Equal(t, 1, o.Scroll())
	o.Set("x\ny")
	assert.Equal(t, 0, o.Scroll())
	assert.Equal(t, 2, o.LineCount())
}

func TestOutputEndJumpsToBottomClamped(t *testing.T) {
	var o Output
	o.Set("1\n2\n3\n4\n5")
	o.OnKey(2, keys.Key{Kind: keys.CtrlE})
	assert.Equal(t, 3, o.Scroll())
}

func TestOutputHomeResetsToTop(t *testing.T) {
	var o Output
	o.Set("1\n2\n3\n4\n5")
	o.OnKey(2, keys.Key{Kind: keys.CtrlE})
	o.OnKey(2, keys.Key{Kind: keys.CtrlH})
	assert.Equal(t, 0, o.Scroll())
}

func TestOutputEmptyTextHasZeroLines(t *testing.T) {
	var o Output
	o.Set("")
	assert.Equal(t, 0, o.LineCount())
}

func TestOutputTrailingNewlineDoesNotAddPhantomLine(t *testing.T) {
	var o Output
	o.Set("a\nb\nc\n")
	assert.Equal(t, 3, o.LineCount())
}
