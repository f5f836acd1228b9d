package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarluq/dsgen/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the configuration without writing the dataset YAML.
Checks YAML/TOML syntax and field values. The dataset directory itself is
checked only when the document is generated.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	name := cfgFile
	if name == "" {
		name = "built-in defaults"
	}

	cfg, err := config.LoadOrDefault(cfgFile)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(out, "✗ Config validation failed: %s\n", err)
		return err
	}

	fmt.Fprintf(out, "✓ %s is valid\n", name)
	fmt.Fprintf(out, "  dataset: %s (%d classes) -> %s\n",
		cfg.Dataset.Dir, len(cfg.Dataset.Classes), cfg.Dataset.OutputPath())
	return nil
}
