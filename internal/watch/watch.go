// SPDX-License-Identifier: MIT

// Package watch keeps the generated header in sync with its input file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dolphin-riscv/devcfg/internal/config"
	"github.com/dolphin-riscv/devcfg/internal/header"
	xlog "github.com/dolphin-riscv/devcfg/internal/log"
)

// Watcher regenerates the header whenever the input file changes. Load or
// parse failures in watch mode are logged and skipped so the last good header
// stays in place.
type Watcher struct {
	Input    string
	Output   string
	Debounce time.Duration

	logger zerolog.Logger
}

// New returns a Watcher with the default debounce interval.
func New(input, output string) *Watcher {
	return &Watcher{
		Input:    input,
		Output:   output,
		Debounce: 500 * time.Millisecond,
		logger:   xlog.WithComponent("watch"),
	}
}

// Run blocks until ctx is cancelled, regenerating the header on Write and
// Create events for the input file. The parent directory is watched rather
// than the file itself so editors that replace the file (vim, sed -i) keep
// triggering events.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	input := filepath.Clean(w.Input)
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch input directory: %w", err)
	}

	w.logger.Info().
		Str("event", "watch.started").
		Str("path", input).
		Msg("watching input file for changes")

	// Debounce timer to avoid regenerating for rapid successive writes.
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("event", "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug().
					Str("event", "watch.input_changed").
					Str("op", event.Op.String()).
					Msg("input file changed")

				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(w.Debounce, w.regenerate)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().
				Err(err).
				Str("event", "watch.error").
				Msg("watcher error")
		}
	}
}

func (w *Watcher) regenerate() {
	doc, err := config.Load(w.Input)
	if err != nil {
		w.logger.Error().
			Err(err).
			Str("event", "watch.reload_failed").
			Msg("input no longer loads, keeping previous header")
		return
	}

	diags, err := header.Generate(doc, w.Output)
	for _, d := range diags {
		w.logger.Warn().
			Str("event", "watch.field_skipped").
			Str("owner", d.Owner).
			Str("field", d.Field).
			Msg("field skipped")
	}
	if err != nil {
		w.logger.Error().
			Err(err).
			Str("event", "watch.write_failed").
			Msg("failed to write header")
		return
	}

	w.logger.Info().
		Str("event", "watch.regenerated").
		Str("output", w.Output).
		Msg("header regenerated")
}
