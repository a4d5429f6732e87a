package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, H/L   - Move
  Down, J           - Soft drop
  Up, X, K          - Rotate clockwise
  Z                 - Rotate counter-clockwise
  Space             - Hard drop
  Enter, P          - Start, pause or resume
  Esc               - Cancel the round
  R                 - Restart
  Tab               - High scores
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow start
  normal - Default speed
  hard   - Fast start
  fixed  - Speed never increases

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --config ./my-rules.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name scores are saved under")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := registry.Default()
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'blockfall list' to see available games", gameID)
	}

	// The game owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "player", flagPlayer, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, cfg, tui.WithLogger(logger), tui.WithPlayer(flagPlayer)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
