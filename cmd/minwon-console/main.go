// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// minwon-console is a terminal UI for district office operators
// triaging citizen complaints.
//
// Two modes of operation:
//
// Service mode (default): connects to the complaint service over
// HTTP, fetches the full collection, and supports the interactive
// edit flow (status, department assignment, operator reply). Edits
// are committed to the service before they appear locally.
//
// File mode (--file): loads complaints from an exported JSON
// snapshot. Read-only; useful for offline inspection and demos.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jiminbae/minwon-console/lib/config"
	"github.com/jiminbae/minwon-console/lib/minwonclient"
	"github.com/jiminbae/minwon-console/lib/minwonui"
	"github.com/jiminbae/minwon-console/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var serverURL string
	var filePath string
	var logOutput string

	flagSet := pflag.NewFlagSet("minwon-console", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $MINWON_CONFIG if set)")
	flagSet.StringVar(&serverURL, "server", "", "complaint service base URL (overrides config)")
	flagSet.StringVar(&filePath, "file", "", "load complaints from a JSON snapshot instead of the service (read-only)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to status bar display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("minwon-console " + version.Runtime())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("minwon-console requires an interactive terminal")
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}
	if logOutput == "" {
		logOutput = cfg.Log.File
	}

	// Log records from background work (fetches, commits) go to the
	// status bar instead of stderr, which would corrupt the
	// alt-screen display. An optional JSON file captures everything
	// for post-mortem debugging.
	tuiHandler := minwonui.NewTUILogHandler(slog.LevelInfo)
	logger := slog.New(tuiHandler)
	var closeLogFile func()
	if logOutput != "" {
		fileHandler, fileCloser, fileErr := openFileLogHandler(logOutput, cfg.LogLevel())
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, fileErr)
		}
		closeLogFile = fileCloser
		defer closeLogFile()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	}

	var source minwonui.Source
	if filePath != "" {
		source = minwonui.NewFileSource(filePath)
	} else {
		client, clientErr := minwonclient.NewClient(minwonclient.ClientConfig{
			BaseURL:    cfg.Server.URL,
			HTTPClient: &http.Client{Timeout: timeout},
			Logger:     logger,
		})
		if clientErr != nil {
			return clientErr
		}
		source = client
	}

	model := minwonui.NewModel(source, minwonui.Options{
		PageSize:       cfg.Console.PageSize,
		PageGroupSize:  cfg.Console.PageGroupSize,
		RecentRows:     cfg.Console.RecentRows,
		RequestTimeout: timeout,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())

	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Minwon console — interactive terminal UI for triaging citizen complaints.

By default, connects to the complaint service configured in the
config file (or http://127.0.0.1:8000). Use --file to browse an
exported JSON snapshot offline instead; file mode is read-only.

Configuration is read from the file named by $MINWON_CONFIG, or from
--config. Flags override the file.

Usage:
  minwon-console [flags]

Examples:
  # Connect to the default local service
  minwon-console

  # Connect to a specific service
  minwon-console --server http://minwon.example.go.kr:8000

  # Browse an exported snapshot offline
  minwon-console --file complaints-2025-07.json

  # Capture structured logs alongside the session
  minwon-console --log-output /tmp/minwon-console.log

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler writing to the given
// path. Returns the handler, a cleanup function to close the file,
// and any error. The file is created or truncated.
func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
