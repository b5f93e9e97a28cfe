package event

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"time"

	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/keys"
	"github.com/bmf-san/vico/internal/mode"
)

const waitingPollInterval = 100 * time.Millisecond

// Loop owns the router, the shared channel, and the terminal
// reader/writer, and runs the main event dispatch loop described by
// original_source/src/application.rs::run.
type Loop struct {
	router *mode.Router
	ctx    *mode.Context
	ch     chan Msg
	out    io.Writer
	colors *drawer.ANSIColors
	buf    bytes.Buffer
}

// NewLoop builds a Loop. ctx.EventSender must already be set to a
// *Sender wrapping the same channel passed here.
func NewLoop(router *mode.Router, ctx *mode.Context, ch chan Msg, out io.Writer, colors *drawer.ANSIColors) *Loop {
	return &Loop{router: router, ctx: ctx, ch: ch, out: out, colors: colors}
}

// ReadTerminal runs forever, decoding keys from r and posting KeyMsg
// events, until r returns an error (EOF on terminal close). It is meant
// to run in its own goroutine, mirroring
// original_source::terminal_event_loop.
func ReadTerminal(ctx context.Context, r *bufio.Reader, ch chan<- Msg) {
	dec := keys.NewDecoder(r)
	for {
		if ctx.Err() != nil {
			return
		}
		k, err := dec.Next()
		if err != nil {
			return
		}
		ch <- Msg{Kind: KeyMsg, Key: k}
	}
}

// Run drives the loop until the channel is closed (terminal disconnect)
// or the active mode signals quit via the Esc/cancel policy on the root
// mode.
func (l *Loop) Run() {
	l.router.EnterMode(l.ctx, mode.ChangeInfo{Kind: mode.KindStatus})

	for {
		var msg Msg
		var ok bool

		if l.router.IsWaitingResponse() {
			select {
			case msg, ok = <-l.ch:
			case <-time.After(waitingPollInterval):
				l.draw()
				continue
			}
		} else {
			msg, ok = <-l.ch
		}

		if !ok {
			return
		}

		switch msg.Kind {
		case KeyMsg:
			if !l.router.OnKey(l.ctx, msg.Key) {
				return
			}
		case ResizeMsg:
			l.ctx.ViewportCols = msg.Width
			l.ctx.ViewportRows = msg.Height
		case ResponseMsg:
			l.router.OnResponse(l.ctx, msg.ResponseKind, msg.Response)
		case ModeChangeMsg:
			l.router.EnterMode(l.ctx, msg.ModeChange)
		case ModeRefreshMsg:
			l.router.RefreshMode(l.ctx, msg.RefreshKind)
		case BackMsg:
			l.router.Back(l.ctx)
		}

		l.draw()
	}
}

func (l *Loop) draw() {
	l.buf.Reset()
	d := drawer.New(&l.buf, l.ctx.ViewportCols, l.ctx.ViewportRows, l.colors)
	d.Clear()
	l.router.Draw(l.ctx, d)
	_ = d.Flush(l.out)
}
