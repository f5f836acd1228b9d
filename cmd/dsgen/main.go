// Package main is the entry point for dsgen.
package main

import (
	"context"
	"os"

	"charm.land/fang/v2"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFile = "dsgen.yaml"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dsgen",
	Short: "Generate dataset YAML for detection training",
	Long: `dsgen writes the dataset YAML a training tool reads: the train and val image
directories of a dataset, the class count and the class names.

Without --config it emits the built-in example dataset.`,
	Args:          cobra.NoArgs,
	RunE:          runEmit,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path, YAML or TOML (default: built-in example dataset)")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
