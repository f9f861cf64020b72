package twlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a small theme exercising the scales the analyses need.
func testConfig() ThemeConfig {
	return ThemeConfig{
		Theme: map[string]map[string]any{
			"padding":      {"1": "0.25rem", "2": "0.5rem", "4": "1rem"},
			"margin":       {"2": "0.5rem", "4": "1rem"},
			"inset":        {"0": "0", "4": "1rem"},
			"gap":          {"2": "0.5rem", "4": "1rem"},
			"width":        {"4": "1rem", "full": "100%"},
			"height":       {"4": "1rem", "full": "100%"},
			"size":         {"4": "1rem"},
			"borderWidth":  {"DEFAULT": "1px", "2": "2px"},
			"borderRadius": {"DEFAULT": "0.25rem", "lg": "0.5rem"},
			"fontSize":     {"sm": "0.875rem", "lg": "1.125rem"},
			"fontWeight":   {"bold": "700", "normal": "400"},
			"opacity":      {"50": "0.5"},
			"textColor": {
				"blue":  map[string]any{"500": "#3b82f6", "700": "#1d4ed8"},
				"white": "#fff",
			},
			"backgroundColor": {
				"blue": map[string]any{"500": "#3b82f6"},
				"red":  map[string]any{"500": "#ef4444"},
			},
		},
	}
}

func TestSortClassText(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	tests := []struct {
		name        string
		input       string
		wantSorted  string
		wantChanged bool
	}{
		{
			name:        "already sorted",
			input:       "p-4 mt-2 text-center",
			wantSorted:  "p-4 mt-2 text-center",
			wantChanged: false,
		},
		{
			name:        "taxonomy order restored",
			input:       "text-center p-4 mt-2",
			wantSorted:  "p-4 mt-2 text-center",
			wantChanged: true,
		},
		{
			name:        "variant sorts after bare form",
			input:       "hover:p-4 p-2",
			wantSorted:  "p-2 hover:p-4",
			wantChanged: true,
		},
		{
			name:        "unknown classes keep order at the end",
			input:       "btn text-center p-4 spinner",
			wantSorted:  "p-4 text-center btn spinner",
			wantChanged: true,
		},
		{
			name:        "layout before spacing before typography",
			input:       "font-bold overflow-x-auto p-2",
			wantSorted:  "overflow-x-auto p-2 font-bold",
			wantChanged: true,
		},
		{
			name:        "empty input",
			input:       "",
			wantSorted:  "",
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.SortClassText(tt.input)
			assert.Equal(t, tt.wantSorted, got.Sorted)
			assert.Equal(t, tt.wantChanged, got.Changed)
			assert.Empty(t, got.Duplicates)
		})
	}
}

func TestSortClassTextDuplicates(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	got := analyzer.SortClassText("p-4 m-2 p-4")
	assert.Equal(t, "p-4 m-2", got.Sorted)
	assert.True(t, got.Changed)
	assert.Equal(t, []string{"p-4"}, got.Duplicates)

	// Triplicates report one duplicate per removed occurrence.
	got = analyzer.SortClassText("btn btn btn")
	assert.Equal(t, "btn", got.Sorted)
	assert.Equal(t, []string{"btn", "btn"}, got.Duplicates)
}

func TestSortClassTextPreservesWhitespace(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	// Separators stay in their slots while names move.
	got := analyzer.SortClassText("  mt-2  p-4")
	assert.Equal(t, "  p-4  mt-2", got.Sorted)
	assert.True(t, got.Changed)

	got = analyzer.SortClassText("p-4\n\tmt-2\n")
	assert.Equal(t, "p-4\n\tmt-2\n", got.Sorted)
	assert.False(t, got.Changed)
}

func TestSortClassTextWithCustomOracle(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	// Reverse-alphabetical oracle; unknown classes stay keyless.
	oracle := func(class string) (int, bool) {
		if class == "btn" {
			return 0, false
		}
		return -int(class[0]), true
	}

	got := analyzer.SortClassTextWith("a-1 btn c-3 b-2", oracle)
	assert.Equal(t, "c-3 b-2 a-1 btn", got.Sorted)
	assert.True(t, got.Changed)
}

func TestOracleStability(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())
	oracle := analyzer.Oracle()

	key1, ok := oracle("p-4")
	require.True(t, ok)
	key2, ok := oracle("hover:p-4")
	require.True(t, ok)
	assert.Less(t, key1, key2)

	_, ok = oracle("definitely-not-a-utility")
	assert.False(t, ok)

	// Same leaf and variant depth produce the same key.
	k1, _ := oracle("md:p-4")
	k2, _ := oracle("lg:p-2")
	assert.Equal(t, k1, k2)
}
