package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/testcraft/internal/core"
	"github.com/vovakirdan/testcraft/internal/platform/gui"
	"github.com/vovakirdan/testcraft/internal/platform/tui"
)

var flagGUI bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play TestCraft!",
	Long: `Start the game on the menu screen.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump (from the floor)
  P                - Pause
  Esc/X            - Give up the run; back to the menu from game over
  Enter/Click      - Press the button on screen
  Tab              - High scores (terminal only)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  testcraft play
  testcraft play --gui
  testcraft play --difficulty easy
  testcraft play --seed 42 --config ./my-testcraft.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, difficulty, err := gameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Continue without storage - game still works
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("session started", "player", flagPlayer, "difficulty", difficulty, "gui", flagGUI)

	if flagGUI {
		err = gui.Run(gui.Options{
			Config:     cfg,
			TickRate:   flagFPS,
			Seed:       flagSeed,
			Store:      store,
			Player:     flagPlayer,
			Difficulty: difficulty,
			Logger:     logger,
		})
	} else {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		err = tui.Run(tui.Options{
			Config: cfg,
			Runtime: core.RuntimeConfig{
				ScreenW:  width,
				ScreenH:  height,
				TickRate: flagFPS,
				Seed:     flagSeed,
			},
			Store:      store,
			Player:     flagPlayer,
			Difficulty: difficulty,
			Logger:     logger,
		})
	}

	if err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")
	return nil
}
