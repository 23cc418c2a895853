package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-domino/internal/core"
	"github.com/vovakirdan/tui-domino/internal/games/domino"
	"github.com/vovakirdan/tui-domino/internal/platform/tui"
	"github.com/vovakirdan/tui-domino/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: domino).

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Space/Up, W      - Rotate (swap colors)
  Enter, X         - Hard drop
  P/Esc            - Pause
  R                - Restart after game over
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Four colors instead of five
  normal - Config as loaded
  hard   - Faster start (700ms)
  fixed  - No speed-up with level

Examples:
  domino play
  domino play domino_wide
  domino play --difficulty hard
  domino play --config ./my-domino.yaml --log domino.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(domino.ModeClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	if err := play(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one mode to completion. The log file is closed on every return.
func play(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'domino list' to see available modes", gameID)
	}

	// stdout belongs to the TUI; logs go to --log or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	domino.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("create game", "mode", gameID, "err", err)
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig()); err != nil {
		logger.Error("run game", "mode", gameID, "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the host config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
