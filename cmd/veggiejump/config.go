package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/veggie-jump/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
search order, difficulty preset and --fps are applied.

Search order:
  --config path (or ` + config.EnvConfig + `)
  ~/.veggiejump/config.yaml
  ./configs/veggiejump.yaml
  embedded defaults

Examples:
  veggiejump config
  veggiejump config --difficulty easy > ~/.veggiejump/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	s, err := resolveSettings()
	if err != nil {
		fatal("reading settings", err)
	}

	cfg, source, err := loadConfig(s)
	if err != nil {
		fatal("loading config", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("encoding config", err)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
