package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/peterh/liner"
)

const banner = "Lambda calculus interpreter\n'exit' to quit."

// Run reads lines from the terminal until EOF or "exit". A SIGINT while a
// term is reducing cancels that reduction and returns to the prompt.
func Run(ctx context.Context, cfg *Config) error {
	s := NewSession(cfg, os.Stdout, os.Stderr)
	fmt.Println(s.info(banner))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if path := cfg.HistoryPath(); path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(path); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-sigc:
				if s.Interrupt() {
					fmt.Fprintln(os.Stderr, s.failure("interrupted"))
				}
			case <-done:
				return
			}
		}
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.Eval(ctx, line) {
			return nil
		}
	}
}
