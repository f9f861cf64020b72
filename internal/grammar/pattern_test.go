package grammar

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, theme *Theme, template string) *regexp.Regexp {
	t.Helper()
	src := CompilePattern(theme, template)
	require.NotEmpty(t, src)
	re, err := regexp.Compile(src)
	require.NoError(t, err)
	return re
}

func TestCompilePatternScaleKeys(t *testing.T) {
	theme := &Theme{Scales: map[string]Scale{
		"padding": {"0": "0", "4": "1rem", "px": "1px"},
	}}
	re := mustCompile(t, theme, `p-${padding}`)

	assert.True(t, re.MatchString("p-4"))
	assert.True(t, re.MatchString("p-px"))
	assert.True(t, re.MatchString("!p-0"))
	assert.True(t, re.MatchString("p-[2.5rem]"))
	assert.False(t, re.MatchString("p-5"))
	assert.False(t, re.MatchString("p-"))
	assert.False(t, re.MatchString("pt-4"))
}

func TestCompilePatternNegativeBranch(t *testing.T) {
	theme := &Theme{Scales: map[string]Scale{
		"margin": {"0": "0", "4": "1rem", "auto": "auto"},
	}}
	re := mustCompile(t, theme, `mt-${margin}|-mt-${-margin}`)

	assert.True(t, re.MatchString("mt-auto"))
	assert.True(t, re.MatchString("-mt-4"))
	// Keyword values cannot be negated.
	assert.False(t, re.MatchString("-mt-auto"))

	m := re.FindStringSubmatch("-mt-4")
	require.NotNil(t, m)
	idx := re.SubexpIndex(captureNegative)
	require.Positive(t, idx)
	assert.Equal(t, "4", m[idx])
}

func TestCompilePatternDefaultKeyMakesSuffixOptional(t *testing.T) {
	theme := &Theme{Scales: map[string]Scale{
		"borderRadius": {DefaultKey: "0.25rem", "lg": "0.5rem"},
	}}
	re := mustCompile(t, theme, `rounded-${borderRadius}`)

	assert.True(t, re.MatchString("rounded"))
	assert.True(t, re.MatchString("rounded-lg"))
	assert.False(t, re.MatchString("rounded-"))
	assert.False(t, re.MatchString("rounded-md"))
}

func TestCompilePatternPrefix(t *testing.T) {
	theme := &Theme{
		Prefix: "tw-",
		Scales: map[string]Scale{"padding": {"4": "1rem"}},
	}
	re := mustCompile(t, theme, `p-${padding}`)

	assert.True(t, re.MatchString("tw-p-4"))
	assert.True(t, re.MatchString("!tw-p-4"))
	assert.False(t, re.MatchString("p-4"))
}

func TestCompilePatternDarkFragment(t *testing.T) {
	tests := []struct {
		name    string
		mode    DarkMode
		matches string
		dead    bool
	}{
		{name: "media mode has no class", mode: DarkMode{Mode: "media"}, dead: true},
		{name: "class mode default selector", mode: DarkMode{Mode: "class"}, matches: "dark"},
		{name: "class mode custom selector", mode: DarkMode{Mode: "class", Selector: ".theme-dark"}, matches: "theme-dark"},
		{name: "compound selector has no single class", mode: DarkMode{Mode: "class", Selector: "[data-mode=dark] .dark"}, dead: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := &Theme{DarkMode: tt.mode}
			src := CompilePattern(theme, `${dark}`)
			if tt.dead {
				assert.Empty(t, src)
				return
			}
			re, err := regexp.Compile(src)
			require.NoError(t, err)
			assert.True(t, re.MatchString(tt.matches))
		})
	}
}

func TestCompilePatternColorOpacityModifier(t *testing.T) {
	theme := &Theme{Scales: map[string]Scale{
		"backgroundColor": {
			"blue":  map[string]any{"500": "#3b82f6", DefaultKey: "#00f"},
			"white": "#fff",
		},
		"opacity": {"50": "0.5"},
	}}
	re := mustCompile(t, theme, `bg-${backgroundColor}`)

	assert.True(t, re.MatchString("bg-blue-500"))
	assert.True(t, re.MatchString("bg-blue"))
	assert.True(t, re.MatchString("bg-white"))
	assert.True(t, re.MatchString("bg-blue-500/50"))
	assert.True(t, re.MatchString("bg-blue-500/75"))
	assert.True(t, re.MatchString("bg-blue-500/[0.5]"))
	assert.True(t, re.MatchString("bg-[#bada55]"))
	assert.True(t, re.MatchString("bg-[color:var(--brand)]"))
	assert.False(t, re.MatchString("bg-blue-300"))
	assert.False(t, re.MatchString("bg-[color:]"))
}

func TestCompilePatternStrictColorArbitrary(t *testing.T) {
	theme := &Theme{Scales: map[string]Scale{}}
	re := mustCompile(t, theme, `fill-${fill}`)

	assert.True(t, re.MatchString("fill-[#1da1f2]"))
	assert.True(t, re.MatchString("fill-[rgb(29,161,242)]"))
	assert.True(t, re.MatchString("fill-[color:var(--accent)]"))
	// Only color-shaped arbitrary values are accepted for strict
	// properties.
	assert.False(t, re.MatchString("fill-[2px]"))
	assert.False(t, re.MatchString("fill-[length:2px]"))
}

func TestCompilePatternArbitraryProperties(t *testing.T) {
	re := mustCompile(t, &Theme{}, `${arbitraryProperties}`)

	assert.True(t, re.MatchString("[mask-type:luminance]"))
	assert.True(t, re.MatchString("[grid-template-rows:auto_1fr]"))
	assert.False(t, re.MatchString("[luminance]"))
	assert.False(t, re.MatchString("[mask-type:]"))
}

func TestCompilePatternRepeatedPlaceholder(t *testing.T) {
	theme := &Theme{Scales: map[string]Scale{
		"gap": {"2": "0.5rem"},
	}}
	// The same placeholder twice may not declare the capture name twice.
	src := CompilePattern(theme, `gap-${gap}|space-${gap}`)
	re, err := regexp.Compile(src)
	require.NoError(t, err)
	assert.True(t, re.MatchString("gap-2"))
	assert.True(t, re.MatchString("space-2"))
}

func TestCompilePatternLongestKeyFirst(t *testing.T) {
	theme := &Theme{Scales: map[string]Scale{
		"fontSize": {"lg": "1.125rem", "lg2": "1.25rem"},
	}}
	re := mustCompile(t, theme, `text-${fontSize}`)

	m := re.FindStringSubmatch("text-lg2")
	require.NotNil(t, m)
	idx := re.SubexpIndex(captureValue)
	assert.Equal(t, "lg2", m[idx])
}
