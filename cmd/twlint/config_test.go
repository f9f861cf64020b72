package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twlint.yaml")
	configContent := `
verbose: true
prefix: tw-
darkMode: class
darkModeSelector: .theme-dark

theme:
  padding:
    "0": "0"
    "4": "1rem"
  textColor:
    blue:
      "500": "#3b82f6"

lint:
  strict: true
  checks:
    - order
    - conflicts
  paths:
    - "web/**/*.templ"
  max-same-issues: 3
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "tw-", k.String("prefix"))
	assert.Equal(t, "class", k.String("darkMode"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 3, k.Int("lint.max-same-issues"))

	config := buildLintConfig()
	assert.Equal(t, []string{"web/**/*.templ"}, config.ScanPaths)
	assert.True(t, config.Strict)
	assert.Equal(t, 3, config.MaxSameIssues)

	theme := config.Theme
	assert.Equal(t, "tw-", theme.Prefix)
	assert.Equal(t, "class", theme.DarkMode)
	assert.Equal(t, ".theme-dark", theme.DarkModeSelector)
	require.Contains(t, theme.Theme, "padding")
	assert.Equal(t, "1rem", theme.Theme["padding"]["4"])
	require.Contains(t, theme.Theme, "textColor")

	checks := config.Checks
	assert.True(t, checks.Order)
	assert.True(t, checks.Conflicts)
	assert.False(t, checks.Duplicates)
	assert.False(t, checks.Shorthand)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// A missing config file is not an error.
	require.NoError(t, loadConfigFromPath("/nonexistent/.twlint.yaml"))

	config := buildLintConfig()
	assert.Equal(t, []string{"**/*.html", "**/*.templ"}, config.ScanPaths)
	assert.False(t, config.Strict)
	assert.Empty(t, config.Theme.Prefix)
	assert.Nil(t, config.Theme.Theme)
}

func TestThemeFileOverride(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twlint.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
prefix: tw-
theme:
  padding:
    "2": "0.5rem"
`), 0644))

	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`
theme:
  padding:
    "8": "2rem"
`), 0644))

	cmd := &cobra.Command{}
	cmd.Flags().String("config", configPath, "")
	cmd.Flags().String("theme-file", themePath, "")
	require.NoError(t, loadConfig(cmd))

	theme := buildThemeConfig()
	assert.Equal(t, "tw-", theme.Prefix)
	assert.Equal(t, "2rem", theme.Theme["padding"]["8"])
}

func TestEnvOverridesFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twlint.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("lint:\n  strict: false\n"), 0644))

	t.Setenv("TWLINT_LINT_STRICT", "true")
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("lint.strict"))
}
