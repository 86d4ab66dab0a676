// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// bettracker is a terminal UI for tracking personal sports bets
// against the bettracker backend. It shows a stats dashboard, a
// filterable ticket list with inline settlement, a screenshot OCR
// import flow, market type management, and app settings.
//
// Configuration comes from the YAML file named by the
// BETTRACKER_CONFIG environment variable or the --config flag; with
// neither set, built-in defaults point at a backend on
// 127.0.0.1:8000.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/config"
	"github.com/toz-panzmoravy/bettracker/lib/trackerui"
	"github.com/toz-panzmoravy/bettracker/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("bettracker", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config YAML (default: $BETTRACKER_CONFIG)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to the status bar)")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("bettracker")
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
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	uiHandler := trackerui.NewUILogHandler(logLevel(cfg.Log.Level))
	logger, cleanup, err := buildLogger(cfg, logOutput, uiHandler)
	if err != nil {
		return err
	}
	defer cleanup()

	client := api.NewClient(cfg.Backend.BaseURL)
	model := trackerui.NewModel(client, cfg, logger)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	uiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildLogger assembles the slog fanout: records always reach the
// status bar handler, and additionally a JSON file when configured
// via --log-output or log.file.
func buildLogger(cfg *config.Config, logOutput string, uiHandler slog.Handler) (*slog.Logger, func(), error) {
	cleanup := func() {}

	filePath := logOutput
	if filePath == "" {
		filePath = cfg.Log.File
	}
	if filePath == "" {
		return slog.New(uiHandler), cleanup, nil
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, cleanup, fmt.Errorf("opening log file: %w", err)
	}
	cleanup = func() { file.Close() }

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: logLevel(cfg.Log.Level)})
	return slog.New(fanoutHandler{uiHandler, fileHandler}), cleanup, nil
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

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `bettracker — terminal UI for tracking sports bets.

Connects to the bettracker backend configured in the YAML config
(BETTRACKER_CONFIG or --config); without a config it expects the
backend on http://127.0.0.1:8000/api.

Tabs: 1 dashboard, 2 tickets, 3 screenshot import, 4 market types,
5 settings. Press q to quit.

Usage:
  bettracker [flags]

Flags:
%s`, flagSet.FlagUsages())
}
