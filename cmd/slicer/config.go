package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-slicer/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the gameplay configuration as YAML, after --config and
--difficulty have been applied. Redirect the output to
~/.slicer/configs/slicer.yaml to start customising.

Examples:
  slicer config
  slicer config --difficulty hard
  slicer config --default > ~/.slicer/configs/slicer.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagShowDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
