// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package monitor watches the output and logs directories during a guide
// creation run and prints a periodic summary, so a long run can be followed
// from a second terminal.
package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/guide-creator/internal/tracking"
)

// Monitor follows artifact creation in the configured directories.
type Monitor struct {
	// OutputDir and LogsDir are the directories to watch. Both are created
	// if absent so the watch can start before the run does.
	OutputDir string
	LogsDir   string

	// Store reads call counts and cost for the summary line. Nil skips it.
	Store *tracking.Store

	// Interval between summary lines (default 5s).
	Interval time.Duration

	// Out receives monitor output. Nil means stdout.
	Out io.Writer

	// seen deduplicates per-file reports across Create and Write events.
	seen map[string]int64
}

// Run watches until the context is cancelled. Cancellation is a clean stop,
// not an error.
func (m *Monitor) Run(ctx context.Context) error {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	interval := m.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	m.seen = make(map[string]int64)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{m.OutputDir, m.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	start := time.Now()
	fmt.Fprintf(out, "Monitoring %s and %s (Ctrl-C to stop)\n", m.OutputDir, m.LogsDir)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
					m.reportFile(out, ev.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(out, "watch error: %v\n", err)
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				m.summarize(ctx, out, start)
			}
		}
	})

	err = g.Wait()
	elapsed := time.Since(start).Round(time.Second)
	fmt.Fprintf(out, "Monitoring stopped after %s\n", elapsed)
	return err
}

func (m *Monitor) reportFile(out io.Writer, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}
	if prev, ok := m.seen[path]; ok && prev == info.Size() {
		return
	}
	m.seen[path] = info.Size()
	fmt.Fprintf(out, "artifact %s (%d bytes)\n", filepath.Base(path), info.Size())
}

func (m *Monitor) summarize(ctx context.Context, out io.Writer, start time.Time) {
	elapsed := time.Since(start).Round(time.Second)
	if m.Store == nil {
		fmt.Fprintf(out, "elapsed %s\n", elapsed)
		return
	}
	total, err := m.Store.Total(ctx)
	if err != nil {
		fmt.Fprintf(out, "elapsed %s (tracking unavailable: %v)\n", elapsed, err)
		return
	}
	fmt.Fprintf(out, "elapsed %s, %d runs, %d calls, estimated $%.4f\n",
		elapsed, total.Runs, total.Calls, total.CostUSD)
}
