package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-descent/internal/config"
)

var (
	flagEffective bool
	flagFormat    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the embedded default configuration, or with --effective the
configuration 'descent play' would use after file discovery and presets.

Save the output to ~/.descent/configs/descent.yaml (or .toml) to customize.

Examples:
  descent config > ~/.descent/configs/descent.yaml
  descent config --effective --difficulty hard
  descent config --effective --format toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the defaults")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format for --effective: yaml or toml")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch config.Format(flagFormat) {
	case config.FormatTOML:
		err = toml.NewEncoder(os.Stdout).Encode(cfg)
	case config.FormatYAML:
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		err = enc.Encode(cfg)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
