package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML. Save it as ~/.pong/pong.yaml
(or pass it with --config) and edit it to tune the game.

With --path, print the config file that would be used instead.

Examples:
  pong config > ~/.pong/pong.yaml
  pong config --path`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print the config file in use")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigPath {
		path := config.Locate(flagConfig)
		if path == "" {
			fmt.Println("(embedded default)")
			return
		}
		fmt.Println(path)
		return
	}

	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
