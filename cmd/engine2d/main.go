// engine2d runs the bundled example games.
//
// Usage:
//
//	engine2d list                    - List available games
//	engine2d run <game>              - Open a game window
//	engine2d replay <game> <file>    - Play back a recorded session
//	engine2d scores <game>           - Show high scores for a game
//
// Global flags:
//
//	--config <dir>       - Directory with engine.yaml and games/ (default: built in)
//	--db <path>          - Scores database (default: storage.path from engine.yaml)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/younwookim/engine2d/internal/games/behaviors"
	_ "github.com/younwookim/engine2d/internal/games/bullethell"
	_ "github.com/younwookim/engine2d/internal/games/keyboard"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "engine2d",
	Short: "engine2d - a small 2D engine and its example games",
	Long: `engine2d runs games built on a fixed-step loop, scenes and a
retained scene graph.

Examples:
  engine2d list
  engine2d run bullethell
  engine2d run keyboard --record keys.json
  engine2d replay keyboard keys.json --headless
  engine2d scores bullethell`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config directory (default: built-in configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: from engine.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}
