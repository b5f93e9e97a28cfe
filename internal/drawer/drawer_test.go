package drawer

import (
	"bytes"
	"testing"

	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderShowsSpinnerWhileWaiting(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, 80, 24, NewANSIColors())
	d.Header("status", "[c]commit", "[arrows]move", true, 1)
	assert.Contains(t, buf.String(), "status")
	assert.Contains(t, buf.String(), "\\")
}

func TestOutputRendersVisibleWindow(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, 80, 24, NewANSIColors())
	var o widget.Output
	o.Set("a\nb\nc\nd\ne")
	o.OnKey(2, keys.Key{Kind: keys.Down})
	d.Output(&o, 2)
	require.NotEmpty(t, buf.String())
}

func TestColumnWidthASCII(t *testing.T) {
	assert.Equal(t, 1, ColumnWidth('a'))
}
