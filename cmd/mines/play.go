package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Arrows/hjkl        - Move the cursor
  Space/Enter        - Reveal
  F                  - Flag / unflag
  R                  - New board
  Tab                - Scoreboard for this session
  ?                  - All keys
  Q/Ctrl+C           - Quit

Mouse:
  Left click         - Reveal (release on the same cell)
  Right click        - Flag / unflag

Examples:
  mines play
  mines play --width 30 --height 16
  mines play --mines 12 --seed 42
  mines play --config ./my-mines.yaml --log-file mines.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the screen belongs to the game)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "mines")
	if err != nil {
		return err
	}

	// Get terminal size before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Session scoreboard; gone when the game exits
	store, err := storage.Open("local")
	if err != nil {
		logger.Warn("could not open scoreboard", "error", err)
		store = nil
	}

	player := os.Getenv("USER")
	if player == "" {
		player = "player"
	}

	game := minesweeper.New(cfg)
	logger.Info("starting game", "board", game.Variant(), "seed", flagSeed)

	runErr := tui.Run(game, store, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Player:   player,
		RedrawHz: cfg.Display.RedrawHz,
		Logger:   logger,
	})

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
