// Command vico is an interactive terminal UI over a git work tree. It
// takes no flags and no subcommands: run it inside a git repository and
// it opens the status screen, switching between status/log/branches/
// tags/stash as you navigate.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/bmf-san/vico/internal/backend"
	"github.com/bmf-san/vico/internal/drawer"
	"github.com/bmf-san/vico/internal/event"
	"github.com/bmf-san/vico/internal/mode"
	"github.com/bmf-san/vico/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(os.Stdout) {
		return fmt.Errorf("vico: stdout is not a terminal")
	}

	ctx := context.Background()

	client, err := backend.Open(ctx, ".")
	if err != nil {
		return fmt.Errorf("vico: not a git repository: %w", err)
	}

	var tty term.DefaultTerminal
	state, err := tty.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("vico: failed to enter raw mode: %w", err)
	}
	defer func() { _ = tty.Restore(int(os.Stdin.Fd()), state) }()

	term.EnterAltScreen(os.Stdout)
	defer term.ExitAltScreen(os.Stdout)

	width, height := term.Size(os.Stdout, 80, 24)

	ch := make(chan event.Msg, 16)
	sender := event.NewSender(ch)

	modeCtx := &mode.Context{
		Ctx:          ctx,
		Backend:      client,
		EventSender:  sender,
		ViewportCols: width,
		ViewportRows: height,
	}

	router := mode.NewRouter(map[mode.Kind]mode.Screen{
		mode.KindStatus:          &mode.Status{},
		mode.KindLog:             &mode.Log{},
		mode.KindRevisionDetails: &mode.RevisionDetails{},
		mode.KindDiff:            &mode.Diff{},
		mode.KindBranches:        &mode.Branches{},
		mode.KindTags:            &mode.Tags{},
		mode.KindStash:           &mode.Stash{},
		mode.KindStashDetails:    &mode.StashDetails{},
		mode.KindMessageInput:    &mode.MessageInput{},
	})

	stopResize := term.WatchResize(os.Stdout, func(w, h int) {
		ch <- event.Msg{Kind: event.ResizeMsg, Width: w, Height: h}
	})
	defer stopResize()

	readerCtx, cancelReader := context.WithCancel(ctx)
	defer cancelReader()
	go event.ReadTerminal(readerCtx, bufio.NewReader(os.Stdin), ch)

	loop := event.NewLoop(router, modeCtx, ch, os.Stdout, drawer.NewANSIColors())
	loop.Run()

	return nil
}
