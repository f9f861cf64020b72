package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twlint"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".twlint.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// A dedicated theme file overrides the config file's theme settings.
	// Unlike the main config, a named theme file must exist.
	if themePath, _ := cmd.Flags().GetString("theme-file"); themePath != "" {
		if err := k.Load(file.Provider(themePath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading theme file %s: %w", themePath, err)
		}
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWLINT_* prefix)
	if err := k.Load(env.Provider("TWLINT_", ".", func(s string) string {
		// TWLINT_LINT_STRICT -> lint.strict
		// TWLINT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWLINT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() twlint.LintConfig {
	// Handle paths: check flag key first, then config key
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = []string{"**/*.html", "**/*.templ"}
	}

	return twlint.LintConfig{
		ScanPaths:          scanPaths,
		Theme:              buildThemeConfig(),
		Checks:             buildChecks(),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		ShowStats:          true,
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// buildThemeConfig reads the theme section of the config file. The theme is
// file-only: scales are nested maps, which flags cannot express.
func buildThemeConfig() twlint.ThemeConfig {
	cfg := twlint.ThemeConfig{
		Prefix:           k.String("prefix"),
		DarkMode:         k.String("darkMode"),
		DarkModeSelector: k.String("darkModeSelector"),
	}

	raw, ok := k.Get("theme").(map[string]any)
	if !ok {
		return cfg
	}
	cfg.Theme = make(map[string]map[string]any, len(raw))
	for prop, v := range raw {
		if scale, ok := v.(map[string]any); ok {
			cfg.Theme[prop] = scale
		}
	}
	return cfg
}

// buildChecks resolves the enabled analyses from flag or config; an empty
// selection enables everything.
func buildChecks() twlint.Checks {
	names := k.Strings("checks")
	if len(names) == 0 {
		names = k.Strings("lint.checks")
	}

	var checks twlint.Checks
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "order":
			checks.Order = true
		case "duplicates":
			checks.Duplicates = true
		case "conflicts":
			checks.Conflicts = true
		case "shorthand":
			checks.Shorthand = true
		}
	}
	return checks
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
