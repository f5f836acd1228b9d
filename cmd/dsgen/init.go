package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `# dsgen configuration
dataset:
  # Dataset directory; must contain images/train and images/test.
  dir: "./foof/food-101"
  # Where the dataset YAML is written (default: <dir>/food101.yaml).
  output: ""
  # Class names in index order.
  classes:
    - pizza
    - grilled_chicken
    - sushi
    - ice_cream
    - hamburger
  # Reject empty class lists and names containing quotes, brackets, commas or colons.
  strict: false

logging:
  level: info        # debug, info, warn, error
  format: console    # json, console, pretty
  output: stderr     # stdout, stderr
  file: yaml_generation.log
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default config file",
	Long:  `Generate a default dsgen configuration file at ./dsgen.yaml`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("output", "o", defaultConfigFile, "output path")
	initCmd.Flags().Bool("force", false, "overwrite existing config file")
}

// runInit writes the default configuration to the --output path. Parent
// directories are created as needed. It refuses to overwrite an existing file
// unless --force is set.
func runInit(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", output)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(output, []byte(defaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Config file created at %s\n", output)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit dataset.dir and dataset.classes")
	fmt.Fprintf(out, "  2. Validate with: dsgen validate --config %s\n", output)
	fmt.Fprintf(out, "  3. Generate with: dsgen --config %s\n", output)

	return nil
}
