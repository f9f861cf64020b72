package twlint

import (
	"strings"

	"github.com/yacobolo/twlint/internal/grammar"
)

// ThemeConfig is the user-facing theme configuration, typically decoded from
// a YAML config file. Scale values may be scalars or nested maps, mirroring
// the shape of a Tailwind theme section.
type ThemeConfig struct {
	// Prefix is prepended to every utility classname (e.g. "tw-").
	Prefix string `koanf:"prefix"`

	// DarkMode is "media" (default) or "class".
	DarkMode string `koanf:"darkMode"`

	// DarkModeSelector overrides the class selector when DarkMode is
	// "class" (e.g. ".theme-dark").
	DarkModeSelector string `koanf:"darkModeSelector"`

	// Theme maps property names to their scales.
	Theme map[string]map[string]any `koanf:"theme"`
}

// Analyzer runs classname analyses against one resolved theme. Building an
// analyzer resolves the theme snapshot once; all patterns compiled from it
// are memoized for the analyzer's lifetime. An Analyzer is safe for
// concurrent use.
type Analyzer struct {
	theme  *grammar.Theme
	parser *grammar.Parser
	leaves []grammar.FlatLeaf

	// axisLeaf resolves (parent group, axis tag) to the leaf a shorthand
	// collapse synthesizes its replacement from.
	axisLeaf map[string]map[string]grammar.FlatLeaf
}

// NewAnalyzer builds an analyzer for the given theme configuration. A zero
// ThemeConfig is valid and falls back to generic value patterns.
func NewAnalyzer(cfg ThemeConfig) *Analyzer {
	theme := resolveTheme(cfg)
	nodes := grammar.DefaultTaxonomy()
	leaves := grammar.Leaves(nodes)

	axisLeaf := make(map[string]map[string]grammar.FlatLeaf)
	for _, leaf := range leaves {
		if leaf.Shorthand == "" {
			continue
		}
		if axisLeaf[leaf.Parent] == nil {
			axisLeaf[leaf.Parent] = make(map[string]grammar.FlatLeaf)
		}
		axisLeaf[leaf.Parent][leaf.Shorthand] = leaf
	}

	return &Analyzer{
		theme:    theme,
		parser:   grammar.NewParser(theme, nodes, nil),
		leaves:   leaves,
		axisLeaf: axisLeaf,
	}
}

// resolveTheme converts the public config into the immutable snapshot the
// grammar engine keys its caches by.
func resolveTheme(cfg ThemeConfig) *grammar.Theme {
	mode := cfg.DarkMode
	if mode == "" {
		mode = "media"
	}
	theme := &grammar.Theme{
		Prefix: cfg.Prefix,
		DarkMode: grammar.DarkMode{
			Mode:     mode,
			Selector: cfg.DarkModeSelector,
		},
	}
	if len(cfg.Theme) > 0 {
		theme.Scales = make(map[string]grammar.Scale, len(cfg.Theme))
		for prop, scale := range cfg.Theme {
			theme.Scales[prop] = grammar.Scale(scale)
		}
	}
	return theme
}

// Parse decomposes a whitespace-separated class string into parsed tokens.
func (a *Analyzer) Parse(text string) []grammar.Parsed {
	return a.parser.ParseAll(text)
}

// variantRank orders variant prefixes: bare utilities sort before
// responsive and state variants, and fewer variant segments sort earlier.
func variantRank(variants string) int {
	if variants == "" {
		return 0
	}
	rank := strings.Count(variants, ":")
	if rank > 9 {
		rank = 9
	}
	return rank
}

// rebuild reassembles class text from the original tokens and a new name
// sequence. Whitespace separators stay in their original slots while names
// move; when names were removed the surplus separators drop off the end.
func rebuild(tokens []grammar.Parsed, names []string) string {
	var sb strings.Builder
	for i, name := range names {
		sep := ""
		if i < len(tokens) {
			sep = tokens[i].Leading
		}
		if i > 0 && sep == "" {
			sep = " "
		}
		sb.WriteString(sep)
		sb.WriteString(name)
	}
	if n := len(tokens); n > 0 {
		sb.WriteString(tokens[n-1].Trailing)
	}
	return sb.String()
}
