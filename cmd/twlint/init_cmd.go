package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twlint.yaml config file",
	Long:  `Create a .twlint.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twlint.yaml"); err == nil && !force {
			return fmt.Errorf(".twlint.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twlint.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .twlint.yaml")
		return nil
	},
}

const defaultConfig = `# twlint configuration
# Docs: https://github.com/yacobolo/twlint

# Shared settings
verbose: false

# Class grammar settings
prefix: ""
darkMode: media            # media | class
darkModeSelector: ""       # e.g. ".theme-dark" when darkMode is class

# Theme scales: which suffix values each utility accepts.
# Absent properties fall back to generic value patterns.
theme:
  padding:
    "0": "0"
    "1": "0.25rem"
    "2": "0.5rem"
    "4": "1rem"
    "8": "2rem"
  margin:
    "0": "0"
    "1": "0.25rem"
    "2": "0.5rem"
    "4": "1rem"
    "8": "2rem"
    auto: auto

# Linting settings
lint:
  paths:
    - "**/*.html"
    - "**/*.templ"
  checks: []               # empty = order,duplicates,conflicts,shorthand
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
