// SPDX-License-Identifier: MIT

// devcfg converts a device/memory configuration file (TOML or YAML) into the
// C header consumed by the runtime.
//
// Usage:
//
//	devcfg [flags] <input.toml> [output.h]
//
// If output is omitted, device_config.h next to the executable is written.
//
// Exit codes:
//   - 0: header generated
//   - 1: output could not be written
//   - 2: input file not found
//   - 3: input could not be parsed
//   - 4: usage error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/dolphin-riscv/devcfg/internal/config"
	"github.com/dolphin-riscv/devcfg/internal/header"
	xlog "github.com/dolphin-riscv/devcfg/internal/log"
	"github.com/dolphin-riscv/devcfg/internal/watch"
)

var Version = "dev"

const defaultOutputName = "device_config.h"

const (
	exitOK       = 0
	exitIO       = 1
	exitNotFound = 2
	exitParse    = 3
	exitUsage    = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("devcfg", flag.ContinueOnError)
	watchMode := fs.Bool("watch", false, "stay running and regenerate the header when the input changes")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *showVersion {
		fmt.Println(Version)
		return exitOK
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Usage: devcfg [flags] <input.toml> [output.h]")
		return exitUsage
	}

	xlog.Configure(xlog.Config{Level: *logLevel})
	logger := xlog.WithComponent("devcfg")

	input := fs.Arg(0)
	output := fs.Arg(1)
	if output == "" {
		var err error
		if output, err = defaultOutputPath(); err != nil {
			logger.Error().Err(err).Msg("cannot resolve default output path")
			return exitIO
		}
	}

	if code := generate(logger, input, output); code != exitOK {
		return code
	}

	if *watchMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := watch.New(input, output).Run(ctx); err != nil {
			logger.Error().Err(err).Msg("watcher failed")
			return exitIO
		}
	}

	return exitOK
}

func generate(logger zerolog.Logger, input, output string) int {
	doc, err := config.Load(input)
	if err != nil {
		logger.Error().Err(err).Str("input", input).Msg("cannot load configuration")
		fmt.Fprintf(os.Stderr, "devcfg: %v\n", err)
		var perr *config.ParseError
		switch {
		case errors.Is(err, config.ErrNotFound):
			return exitNotFound
		case errors.As(err, &perr):
			return exitParse
		default:
			return exitIO
		}
	}

	diags, err := header.Generate(doc, output)
	for _, d := range diags {
		logger.Warn().
			Str("owner", d.Owner).
			Str("field", d.Field).
			Msg("field skipped")
	}
	if err != nil {
		logger.Error().Err(err).Str("output", output).Msg("cannot write header")
		fmt.Fprintf(os.Stderr, "devcfg: %v\n", err)
		return exitIO
	}

	logger.Info().
		Str("output", output).
		Int("devices", len(doc.Devices)).
		Int("skipped_fields", len(diags)).
		Msg("wrote header")
	return exitOK
}

func defaultOutputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), defaultOutputName), nil
}
