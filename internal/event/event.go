// Package event implements the single-channel event loop that drives the
// router: a terminal-reader goroutine, short-lived backend-call
// goroutines, and one foreground goroutine that owns all mode state.
// Grounded on original_source/src/application.rs's Event/EventSender/run,
// translated from mpsc::sync_channel to a buffered Go channel.
package event

import (
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/mode"
)

// Kind discriminates a Msg.
type Kind int

const (
	KeyMsg Kind = iota
	ResizeMsg
	ResponseMsg
	ModeChangeMsg
	ModeRefreshMsg
	BackMsg
)

// Msg is the closed sum type carried over the event channel.
type Msg struct {
	Kind Kind

	Key keys.Key

	Width  int
	Height int

	ResponseKind mode.Kind
	Response     any

	ModeChange  mode.ChangeInfo
	RefreshKind mode.Kind
}

// Sender posts events onto a shared channel on behalf of a mode's
// background worker goroutines. It implements mode.EventSender.
type Sender struct {
	ch chan<- Msg
}

// NewSender wraps ch for posting.
func NewSender(ch chan<- Msg) *Sender { return &Sender{ch: ch} }

func (s *Sender) SendResponse(kind mode.Kind, response any) {
	s.ch <- Msg{Kind: ResponseMsg, ResponseKind: kind, Response: response}
}

func (s *Sender) SendModeChange(info mode.ChangeInfo) {
	s.ch <- Msg{Kind: ModeChangeMsg, ModeChange: info}
}

func (s *Sender) SendModeRefresh(kind mode.Kind) {
	s.ch <- Msg{Kind: ModeRefreshMsg, RefreshKind: kind}
}

func (s *Sender) SendBack() {
	s.ch <- Msg{Kind: BackMsg}
}

var _ mode.EventSender = (*Sender)(nil)
