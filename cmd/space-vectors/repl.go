package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"
)

const banner = `space-vectors — 3-D analytic geometry calculator
Type an expression, or "exit" to leave.`

// runREPL reads expressions line by line, evaluates each one to completion,
// and keeps accepting input after any error. State never survives a line.
func runREPL(cfg config) error {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

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

		src := strings.TrimSpace(line)
		if src == "" {
			continue
		}
		switch src {
		case "exit", "quit":
			return nil
		}

		start := time.Now()
		out, err := evalLine(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		log.WithField("took", time.Since(start)).Debug("evaluated")

		fmt.Println(out)
		ln.AppendHistory(src)
	}
}
