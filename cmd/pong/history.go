package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagHistoryDB    string
	flagHistoryLimit int
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history [player]",
	Short: "Show recorded matches",
	Long: `Show matches recorded with --history.

On a terminal this opens an interactive browser; use --plain (or pipe
the output) for a table. With a player name only that player's matches
and win/loss record are listed.

Examples:
  pong history
  pong history alice --plain
  pong history --db ./club.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryDB, "db", defaultHistoryPath, "Path to match history database")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to list")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a table instead of the interactive browser")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagHistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	interactive := !flagHistoryPlain && len(args) == 0 && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var matches []storage.MatchRecord
	if len(args) == 1 {
		matches, err = store.PlayerMatches(args[0], flagHistoryLimit)
	} else {
		matches, err = store.RecentMatches(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong <left> <right> --history' to record one!")
		return
	}

	fmt.Println(renderMatches(matches))

	if len(args) == 1 {
		stats, err := store.PlayerRecord(args[0])
		if err == nil {
			fmt.Println()
			fmt.Printf("%s: %d played, %d won, %d lost\n", stats.Name, stats.Played, stats.Wins, stats.Losses)
		}
	}
}

// renderMatches formats matches as a bordered table.
func renderMatches(matches []storage.MatchRecord) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Date", "Left", "Score", "Right", "Winner", "Time").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "-"
		}
		secs := int(m.Duration.Seconds())
		t.Row(
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.LeftName,
			strconv.Itoa(m.LeftScore)+"-"+strconv.Itoa(m.RightScore),
			m.RightName,
			winner,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
		)
	}
	return t.String()
}
