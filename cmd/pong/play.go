package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagHistory     string
	flagWatchConfig bool
	flagLogFile     string
)

func init() {
	rootCmd.Flags().StringVar(&flagHistory, "history", "", "Record finished matches (--history=path for a custom database)")
	rootCmd.Flags().Lookup("history").NoOptDefVal = defaultHistoryPath
	rootCmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "Apply config file changes while playing")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the game runs")
}

func runPlay(cmd *cobra.Command, args []string) {
	left, right, err := pong.ParsePlayers(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Usage: %s\n", cmd.UseLine())
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "pong")

	// Get terminal size before the first WindowSizeMsg arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		LeftName:  left,
		RightName: right,
		Game:      gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Theme:  tui.DetectTheme(os.Stdout),
		Logger: logger,
	}

	if flagHistory != "" {
		store, err := storage.Open(flagHistory)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: match history disabled: %v\n", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	var watcher *config.Watcher
	if flagWatchConfig {
		if path := config.Locate(flagConfig); path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch-config ignored, no config file in use")
		} else if watcher, err = config.NewWatcher(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch config: %v\n", err)
			watcher = nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, opts, watcher); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
