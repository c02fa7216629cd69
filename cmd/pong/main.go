// pong is a two-player Pong game for the terminal.
//
// Usage:
//
//	pong <left> <right>      - Play a local match (Q/A vs O/L, Space serves)
//	pong serve               - Host matches over SSH
//	pong history [player]    - Browse recorded matches
//	pong config              - Print the default config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible serves
//	--config <path>     - Game tuning file (.yaml or .toml)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const defaultHistoryPath = "~/.pong/history.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong <left-player> <right-player>",
	Short: "Two-player Pong in your terminal",
	Long: `Pong is the classic two-paddle game for two players sharing one keyboard.

Controls:
  Q / A      - Left paddle up / down
  O / L      - Right paddle up / down
  Space      - Serve, or restart after game over
  P          - Pause
  Esc/Ctrl+C - Quit

The first player to reach the match point (12 by default) wins.

Examples:
  pong alice bob
  pong alice bob --history
  pong alice bob --config ./pong.toml --watch-config
  pong serve
  pong history alice`,
	Args: cobra.ArbitraryArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
