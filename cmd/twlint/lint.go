package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twlint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint utility-class strings in template files",
	Long: `Scan template files for class attributes and check class ordering,
duplicates, contradicting classes, and shorthand opportunities.
Positional arguments override the configured scan paths.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runLint(args)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{
		"**/*.html",
		"**/*.templ",
	}, "File patterns to scan for class attributes")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("theme-file", "", "Theme YAML file overriding the config file's theme settings")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (twlint) suffix on issues")
	f.StringSlice("checks", nil, "Analyses to run: order,duplicates,conflicts,shorthand (default all)")
}

// runLint is shared between `twlint lint` and the bare `twlint` invocation.
func runLint(args []string) error {
	lintConfig := buildLintConfig()
	if len(args) > 0 {
		lintConfig.ScanPaths = args
	}

	lintResult, err := twlint.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := twlint.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		twlint.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 {
			os.Exit(1)
		}
	} else if lintResult.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
