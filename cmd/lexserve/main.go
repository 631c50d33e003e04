// Copyright 2025 The LexServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the Hebrew verb lexicon server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

LexServe loads a dataset of verb entries, each with its conjugation table,
and answers exact lookups of any inflected form, lookups by root and prefix
suggestions over Hebrew headwords with an English translation fallback.
Hebrew input is matched with or without niqqud.

# Usage

Start the server with default settings:

	lexserve

Use a custom dataset and enable debug mode:

	lexserve -data /path/to/words.mpk.gz -d

Run in CLI mode for interactive testing:

	lexserve -c -limit 10

The dataset is a MessagePack file, optionally gzip compressed, holding a
single map with a "words" list. See package dictionary for the layout.

# Configuration

Runtime configuration is managed through a TOML file that supports server
limits, index options and CLI defaults:

	[server]
	max_limit = 64
	default_limit = 15
	min_query = 1
	max_query = 60

	[index]
	data_file = "data/words.mpk"
	strict_ids = false

	[cli]
	default_limit = 15
	max_len = 60

The config file is automatically created with defaults if it doesn't exist.
Values that fail to parse fall back to their defaults one by one.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

	{"id": "req1", "op": "get", "q": "כתבתי"}
	{"id": "req2", "op": "suggest", "q": "write", "l": 5}

See package server for every op and the response layout.

# CLI Mode

CLI mode reads one lookup per line from stdin and prints the entries found
along with the forms that matched:

	כתבתי       exact lookup
	?לכת        prefix suggestions
	@כ-ת-ב      entries of a root
	#1-lichtov כתבה   forms of one entry matching a word

This mode is primarily intended for development and testing of the index
before deploying to server mode.

# Command Line Flags

	-data string
	    Dataset file (default from config)
	-config string
	    Path to a config file
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return in CLI mode (default from config)
	-strict
	    Fail when the dataset repeats an entry id
	-version
	    Show current version

The dataset path is resolved against the working directory, the executable
location and the config directory, in that order.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/lexserve/internal/cli"
	"github.com/bastiangx/lexserve/internal/logger"
	"github.com/bastiangx/lexserve/internal/utils"
	"github.com/bastiangx/lexserve/pkg/config"
	"github.com/bastiangx/lexserve/pkg/dictionary"
	"github.com/bastiangx/lexserve/pkg/server"
	"github.com/bastiangx/lexserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "lexserve"
	gh      = "https://github.com/bastiangx/lexserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataFile := flag.String("data", "", "Dataset file (.mpk or .mpk.gz), overrides the config")
	configFile := flag.String("config", "", "Path to a custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Number of suggestions to return in CLI mode")
	strict := flag.Bool("strict", false, "Fail when the dataset repeats an entry id")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	requested := appConfig.Index.DataFile
	if *dataFile != "" {
		requested = *dataFile
	}
	resolvedData := pathResolver.GetDataFile(requested)
	log.Debugf("Using dataset at: %s", resolvedData)

	entries, err := dictionary.Load(resolvedData)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	index, err := suggest.Build(entries, suggest.WithStrictIDs(*strict || appConfig.Index.StrictIDs))
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	log.Debug("Index build done", "entries", index.Len())

	if *cliMode {
		log.SetReportTimestamp(false)
		cliLimit := appConfig.CLI.DefaultLimit
		if *limit > 0 {
			cliLimit = *limit
		}
		log.Debug("Input info:", "maxLen", appConfig.CLI.MaxLen, "limit", cliLimit)

		inputHandler := cli.NewInputHandler(index, os.Stdin, appConfig.CLI.MaxLen, cliLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(index, appConfig, os.Stdin, os.Stdout)

	showStartupInfo(resolvedData, index.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// printVersion shows the styled version banner.
func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ LexServe ] Hebrew verb lookups, with or without niqqud")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataFile string, entries int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" LexServe ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("dataset: ( %s ), %s entries", dataFile, utils.FormatWithCommas(entries))
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
