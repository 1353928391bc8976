// fusion-tui - A terminal chat interface with a Gemini-backed contact.
//
// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/fusionchat/fusion-tui/internal/config"
	"github.com/fusionchat/fusion-tui/internal/gemini"
	"github.com/fusionchat/fusion-tui/internal/telemetry"
	"github.com/fusionchat/fusion-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("fusion-tui %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// A .env next to the binary is a convenience for development; the
	// real key normally comes from the environment or the config file.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	var sink *telemetry.Sink
	if cfg.Telemetry.Enabled {
		sink, err = telemetry.Open(cfg.Telemetry.DBPath)
		if err != nil {
			// The chat works fine without telemetry.
			fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
			sink = nil
		}
	}
	defer sink.Close()

	client := gemini.NewClientWithConfig(&gemini.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
		Model:   cfg.API.Model,
		Timeout: cfg.Timeout(),
	})
	gateway := gemini.NewGateway(client, sink)

	watcher, err := config.NewWatcher(0, nil)
	if err == nil {
		if watchErr := watcher.Watch(); watchErr == nil {
			defer watcher.Close()
		}
	}

	program := tea.NewProgram(ui.NewApp(cfg, gateway, sink), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
