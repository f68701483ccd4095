package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/platform/tui"
	"github.com/vovakirdan/testcraft/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresStats bool
	flagScoresRun   string
)

// runIDWidth is how much of a run ID the score table shows.
const runIDWidth = 8

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top high scores, optionally for one difficulty.

Difficulties are the presets (easy, normal, hard, fixed) plus "default"
for runs played with the config's own settings.

Examples:
  testcraft scores
  testcraft scores hard
  testcraft scores --stats
  testcraft scores --tui
  testcraft scores --run 3f2a9c1e
  testcraft scores normal --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores instead of showing them")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-difficulty statistics")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show one run by its ID or a unique ID prefix")
}

// parseDifficultyArg accepts a preset name or the default label.
func parseDifficultyArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	if args[0] == storage.DefaultDifficulty {
		return args[0], nil
	}
	preset, err := config.ParsePreset(args[0])
	if err != nil {
		return "", err
	}
	return string(preset), nil
}

func runScores(_ *cobra.Command, args []string) {
	difficulty, err := parseDifficultyArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresRun != "":
		err = printRun(os.Stdout, store, flagScoresRun)
	case flagScoresClear:
		err = clearScores(store, difficulty)
	case flagScoresStats:
		err = printStats(store)
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, difficulty, width, height)
	default:
		err = printScores(store, difficulty)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, difficulty string) error {
	scores, err := store.TopScores(difficulty, flagScoresLimit)
	if err != nil {
		return err
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - TestCraft! (%s)\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'testcraft' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %-8s  %-7s  %s\n", "Rank", "Run", "Player", "Difficulty", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %-8s  %-7s  %s\n", "----", "---", "------", "----------", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		runID := entry.RunID
		if len(runID) > runIDWidth {
			runID = runID[:runIDWidth]
		}
		fmt.Printf("  %-4d  %-8s  %-12s  %-10s  %-8d  %-7d  %s\n",
			i+1, runID, player, entry.Difficulty, entry.Score, entry.Ticks, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	highScore, err := store.HighScore(difficulty)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printRun(w io.Writer, store *storage.Store, runID string) error {
	entry, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	player := entry.Player
	if player == "" {
		player = "-"
	}
	fmt.Fprintf(w, "Run:        %s\n", entry.RunID)
	fmt.Fprintf(w, "Player:     %s\n", player)
	fmt.Fprintf(w, "Difficulty: %s\n", entry.Difficulty)
	fmt.Fprintf(w, "Score:      %d\n", entry.Score)
	fmt.Fprintf(w, "Ticks:      %d\n", entry.Ticks)
	fmt.Fprintf(w, "Played:     %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %-10s  %s\n", "Difficulty", "Runs", "Best", "Average", "Ticks", "Last played")
	for _, name := range names {
		st := stats[name]
		fmt.Printf("  %-10s  %-6d  %-6d  %-8.1f  %-10d  %s\n",
			name, st.RunsCount, st.HighScore, st.AvgScore, st.TotalTicks, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clearScores(store *storage.Store, difficulty string) error {
	if err := store.ClearScores(difficulty); err != nil {
		return err
	}
	if difficulty == "" {
		fmt.Println("Cleared all scores.")
	} else {
		fmt.Printf("Cleared %s scores.\n", difficulty)
	}
	return nil
}
