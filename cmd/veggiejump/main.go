// veggiejump is a single-screen arcade game: run and jump to dodge the
// vegetables thrown at you. It plays in the terminal or in a desktop window.
//
// Usage:
//
//	veggiejump               - Play in the terminal
//	veggiejump play          - Play in the terminal
//	veggiejump window        - Play in a desktop window
//	veggiejump config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--sprites <path>      - Use a custom sprite catalog YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--sound               - Play sound effects
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/veggie-jump/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagSprites    string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "veggiejump",
	Short: "Veggie Jump - dodge the flying vegetables",
	Long: `Veggie Jump is a single-screen arcade game. A vegetable is thrown at
you from a random edge of the screen; jump and run to dodge it. Every
dodge scores a point and the throws get faster.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  veggiejump
  veggiejump play --difficulty hard
  veggiejump window --fullscreen --sound
  veggiejump config --config ./my-veggiejump.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config loop.tick_rate, env "+config.EnvFPS+")")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, env "+config.EnvSeed+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (env "+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (env "+config.EnvDifficulty+")")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
