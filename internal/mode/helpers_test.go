package mode

import "github.com/bmf-san/vico/internal/keys"

func keyChar(r rune) keys.Key { return keys.Key{Kind: keys.Char, Rune: r} }

// capturingSender records whatever it is asked to send, for tests that
// need to inspect a mode's EventSender calls rather than discard them.
type capturingSender struct {
	onResponse func(kind Kind, response any)
	onChange   func(info ChangeInfo)
	onRefresh  func(kind Kind)
	onBack     func()
}

func (c *capturingSender) SendResponse(kind Kind, response any) {
	if c.onResponse != nil {
		c.onResponse(kind, response)
	}
}

func (c *capturingSender) SendModeChange(info ChangeInfo) {
	if c.onChange != nil {
		c.onChange(info)
	}
}

func (c *capturingSender) SendModeRefresh(kind Kind) {
	if c.onRefresh != nil {
		c.onRefresh(kind)
	}
}

func (c *capturingSender) SendBack() {
	if c.onBack != nil {
		c.onBack()
	}
}
