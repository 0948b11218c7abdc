package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-coins/internal/config"
)

var flagPrintDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the game configuration",
	Long: `Print the configuration the game would start with, as YAML.

The config is resolved the same way 'flappy play' resolves it:
--config first, then ~/.arcade/configs/flappy.yaml, then
./configs/flappy.yaml, then the built-in defaults.

Examples:
  flappy config
  flappy config --config ./my-flappy.yaml
  flappy config --print-default > ~/.arcade/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagPrintDefault {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
