package widget

import "github.com/bmf-san/vico/internal/keys"

// FilterEntry is anything that can report whether it matches a fuzzy
// filter pattern.
type FilterEntry interface {
	FuzzyMatches(pattern string) bool
}

// Filter wraps a ReadLine with a fuzzy pattern and the resulting visible
// index list into the backing entries slice.
type Filter struct {
	hasFocus       bool
	readline       ReadLine
	visibleIndices []int
}

// HasFocus reports whether the filter's ReadLine is currently capturing
// input.
func (f *Filter) HasFocus() bool { return f.hasFocus }

// Pattern returns the current filter text.
func (f *Filter) Pattern() string { return f.readline.Input() }

// IsFiltering reports whether a filter is active: either currently being
// typed, or holding a non-empty pattern from before.
func (f *Filter) IsFiltering() bool { return f.hasFocus || f.readline.Input() != "" }

// Clear empties the pattern and exits focus.
func (f *Filter) Clear() {
	f.hasFocus = false
	f.readline.Clear()
	f.visibleIndices = nil
}

// Enter focuses the filter's ReadLine, clearing any existing pattern.
func (f *Filter) Enter() {
	f.hasFocus = true
	f.readline.Clear()
}

// OnKey applies one key event while the filter has focus. Enter and
// Ctrl-F both leave focus (keeping the pattern); Esc leaves focus and
// clears the pattern; any other key is forwarded to the ReadLine.
func (f *Filter) OnKey(key keys.Key) {
	if key.IsSubmit() || key.Kind == keys.CtrlF {
		f.hasFocus = false
		return
	}
	if key.IsCancel() {
		f.hasFocus = false
		f.readline.Clear()
		return
	}
	f.readline.OnKey(key)
}

// Apply rebuilds visibleIndices from entries using the current pattern.
func Apply[T FilterEntry](f *Filter, entries []T) {
	f.visibleIndices = f.visibleIndices[:0]
	pattern := f.readline.Input()
	for i, e := range entries {
		if e.FuzzyMatches(pattern) {
			f.visibleIndices = append(f.visibleIndices, i)
		}
	}
}

// Clone returns a deep copy of f: visibleIndices gets its own backing
// array so a later Apply on either copy never aliases the other.
func (f Filter) Clone() Filter {
	clone := f
	if f.visibleIndices != nil {
		clone.visibleIndices = append([]int(nil), f.visibleIndices...)
	}
	return clone
}

// VisibleIndices returns the current indices into the backing entries
// slice that survive the filter.
func (f *Filter) VisibleIndices() []int { return f.visibleIndices }

// GetVisibleIndex translates a position in the visible list back to an
// index into the backing entries slice.
func (f *Filter) GetVisibleIndex(position int) (int, bool) {
	if position < 0 || position >= len(f.visibleIndices) {
		return 0, false
	}
	return f.visibleIndices[position], true
}

// OnRemoveEntry keeps visibleIndices consistent after the entry at
// entryIndex is removed from the backing slice: indices greater than
// entryIndex shift down by one, the entry itself (if present) is
// dropped, and indices smaller than entryIndex are untouched. The scan
// runs from the end since visibleIndices is ascending and everything
// before the first index less than entryIndex cannot change.
func (f *Filter) OnRemoveEntry(entryIndex int) {
	for i := len(f.visibleIndices) - 1; i >= 0; i-- {
		switch {
		case f.visibleIndices[i] > entryIndex:
			f.visibleIndices[i]--
		case f.visibleIndices[i] == entryIndex:
			f.visibleIndices = append(f.visibleIndices[:i], f.visibleIndices[i+1:]...)
		default:
			return
		}
	}
}
