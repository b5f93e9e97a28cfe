package widget

import "github.com/bmf-san/vico/internal/keys"

// SelectAction is the result of a key event applied to a SelectMenu: it
// tells the caller whether an entry should be toggled.
type SelectAction int

const (
	SelectNone SelectAction = iota
	SelectToggle
	SelectToggleAll
)

// SelectMenu is a cursor/scroll pair over a virtual list whose length is
// supplied by the caller on every call (the menu never owns the entries).
type SelectMenu struct {
	cursor int
	scroll int
}

// Cursor returns the current cursor position.
func (s *SelectMenu) Cursor() int { return s.cursor }

// ScrollOffset returns the current scroll offset.
func (s *SelectMenu) ScrollOffset() int { return s.scroll }

// SetCursor moves the cursor directly, without clamping.
func (s *SelectMenu) SetCursor(i int) { s.cursor = i }

// SaturateCursor clamps the cursor into [0, entriesLen).
func (s *SelectMenu) SaturateCursor(entriesLen int) {
	max := entriesLen - 1
	if max < 0 {
		max = 0
	}
	if s.cursor > max {
		s.cursor = max
	}
}

// OnRemoveEntry adjusts the cursor after the entry at index is removed.
func (s *SelectMenu) OnRemoveEntry(index int) {
	if index <= s.cursor && s.cursor > 0 {
		s.cursor--
	}
}

// OnKey applies one key event; entriesLen and availableHeight describe
// the virtual list and viewport at this call.
func (s *SelectMenu) OnKey(entriesLen, availableHeight int, key keys.Key) SelectAction {
	halfHeight := availableHeight / 2

	switch key.Kind {
	case keys.Down, keys.CtrlN:
		s.cursor++
	case keys.Char:
		switch key.Rune {
		case 'j':
			s.cursor++
		case 'k':
			if s.cursor > 0 {
				s.cursor--
			}
		case 'a':
			return SelectToggleAll
		}
	case keys.Up, keys.CtrlP:
		if s.cursor > 0 {
			s.cursor--
		}
	case keys.Home, keys.CtrlH:
		s.cursor = 0
	case keys.End, keys.CtrlE:
		s.cursor = entriesLen - 1
		if s.cursor < 0 {
			s.cursor = 0
		}
	case keys.PageDown, keys.CtrlD:
		s.cursor += halfHeight
	case keys.PageUp, keys.CtrlU:
		s.cursor = saturatingSub(s.cursor, halfHeight)
	case keys.Space:
		if s.cursor < entriesLen {
			return SelectToggle
		}
		return SelectNone
	}

	s.SaturateCursor(entriesLen)

	switch {
	case s.cursor < s.scroll:
		s.scroll = s.cursor
	case availableHeight > 0 && s.cursor >= s.scroll+availableHeight:
		s.scroll = s.cursor + 1 - availableHeight
	}

	return SelectNone
}
