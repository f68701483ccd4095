// testcraft is a small 2D arcade game: run, jump, and dodge the falling blocks.
//
// Usage:
//
//	testcraft                    - Play in the terminal (same as "play")
//	testcraft play [--gui]       - Play in the terminal, or in a window with --gui
//	testcraft serve              - Start SSH server for remote play
//	testcraft scores [level]     - Show high scores, optionally for one difficulty
//	testcraft config             - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible hazards
//	--db <path>           - Set database path (default: ~/.testcraft/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--player <name>       - Name saved with your scores
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "testcraft",
	Short: "TestCraft! - run, jump and dodge in your terminal or a window",
	Long: `TestCraft! is a small arcade game. Run left and right, jump, and dodge
the blocks falling from the sky. Every block that lands without hitting
you scores a point.

Available commands:
  play     - Play the game (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config

Examples:
  testcraft
  testcraft play --gui
  testcraft play --difficulty hard
  testcraft serve --ssh :2222
  testcraft scores normal`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.testcraft/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name saved with scores")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
