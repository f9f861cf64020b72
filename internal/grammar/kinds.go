package grammar

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ValueKind classifies how a theme property's suffix values are matched.
type ValueKind int

// Value kinds, one matching policy each. New properties are additions to
// propertyKinds, not edits to the builders.
const (
	KindDefault ValueKind = iota
	KindColor
	KindLength
	KindOpacity
	KindAngle
	KindGridLine
	KindEnumerated
)

// propertyKinds maps a theme property name to its value kind. Properties
// absent from the table use KindDefault.
var propertyKinds = map[string]ValueKind{
	"colors":             KindColor,
	"textColor":          KindColor,
	"backgroundColor":    KindColor,
	"borderColor":        KindColor,
	"fill":               KindColor,
	"stroke":             KindColor,
	"gradientColorStops": KindColor,

	"padding":      KindLength,
	"margin":       KindLength,
	"inset":        KindLength,
	"gap":          KindLength,
	"width":        KindLength,
	"height":       KindLength,
	"minWidth":     KindLength,
	"maxWidth":     KindLength,
	"minHeight":    KindLength,
	"maxHeight":    KindLength,
	"size":         KindLength,
	"borderWidth":  KindLength,
	"borderRadius": KindLength,
	"strokeWidth":  KindLength,
	"fontSize":     KindLength,

	"gradientColorStopPositions": KindLength,

	"opacity": KindOpacity,

	"rotate": KindAngle,

	"gridColumnStart": KindGridLine,
	"gridColumnEnd":   KindGridLine,
	"gridRowStart":    KindGridLine,
	"gridRowEnd":      KindGridLine,

	"fontWeight": KindEnumerated,
	"lineClamp":  KindEnumerated,
}

// lengthPrefixOnly lists length properties whose bracketed arbitrary values
// must carry an explicit length: type prefix because the same body is shared
// with another kind (text-[length:2rem] vs text-[color:red]).
var lengthPrefixOnly = map[string]bool{
	"fontSize": true,
}

// strictColorArbitrary lists color properties whose bare bracketed values
// must be color-shaped. fill/stroke share bracket syntax with length- and
// list-valued groups, and gradient color stops would otherwise swallow
// bare percentages belonging to stop positions.
var strictColorArbitrary = map[string]bool{
	"fill":               true,
	"stroke":             true,
	"gradientColorStops": true,
}

// kindOf returns the matching policy for a theme property.
func kindOf(property string) ValueKind {
	if k, ok := propertyKinds[property]; ok {
		return k
	}
	return KindDefault
}

type kindBuilder func(theme *Theme, property string, keys []string) []string

// kindBuilders is the dispatch table from value kind to suffix builder.
// Each builder returns the list of acceptable suffix alternatives for the
// property; the caller joins and captures them.
var kindBuilders = map[ValueKind]kindBuilder{
	KindDefault:    buildDefault,
	KindColor:      buildColor,
	KindLength:     buildLength,
	KindOpacity:    buildOpacity,
	KindAngle:      buildAngle,
	KindGridLine:   buildGridLine,
	KindEnumerated: buildEnumerated,
}

// Generic fallbacks used when the theme configures no keys for a property.
const (
	genericNumber = `\d+(?:\.\d+)?`
	genericLength = `\d+(?:\.\d+)?|\d+/\d+|px|full|screen|auto|min|max|fit|[sld]v[hw]`
	// Named CSS color, optionally with a Tailwind-style shade suffix.
	genericColor = `[a-z]+(?:-(?:50|[1-9]00|950))?`

	calcArbitrary = `\[calc\([^\]]+\)\]`
	varArbitrary  = `\[var\(--[\w-]+\)\]`
)

func buildDefault(_ *Theme, _ string, keys []string) []string {
	alts := quoteKeys(keys)
	if len(alts) == 0 {
		alts = append(alts, genericNumber)
	}
	return append(alts, `\[[^\]]+\]`)
}

func buildColor(theme *Theme, property string, keys []string) []string {
	opacity := opacityModifier(theme)
	scale := theme.ScaleOf(property)

	var alts []string
	for _, key := range keys {
		if nested, ok := Nested(scale[key]); ok {
			variants := scaleKeys(nested)
			if len(variants) > 0 {
				alts = append(alts, regexp.QuoteMeta(key)+`-(?:`+strings.Join(quoteKeys(variants), "|")+`)`+opacity)
			}
			if _, hasDefault := nested[DefaultKey]; hasDefault {
				alts = append(alts, regexp.QuoteMeta(key)+opacity)
			}
			continue
		}
		alts = append(alts, regexp.QuoteMeta(key)+opacity)
	}
	if len(alts) == 0 {
		alts = append(alts, genericColor+opacity)
	}

	if strictColorArbitrary[property] {
		alts = append(alts,
			`\[color:[^\]]+\]`,
			`\[#[0-9a-fA-F]{3,8}\]`,
			`\[(?:rgba?|hsla?|hwb|lab|lch|oklab|oklch|color)\([^\]]*\)\]`,
		)
	} else {
		alts = append(alts, `\[color:[^\]]+\]`, `\[[^:\]]+\]`)
	}
	return alts
}

func buildLength(_ *Theme, property string, keys []string) []string {
	alts := quoteKeys(keys)
	if len(alts) == 0 {
		alts = append(alts, genericLength)
	}

	alts = append(alts, `\[length:[^\]]+\]`)
	if !lengthPrefixOnly[property] {
		alts = append(alts,
			`\[-?\d+(?:\.\d+)?(?:px|r?em|ex|ch|vw|vh|vmin|vmax|[sld]v[hw]|pt|pc|cm|mm|in|%)\]`,
			calcArbitrary,
			varArbitrary,
		)
	}
	return alts
}

func buildOpacity(_ *Theme, _ string, keys []string) []string {
	alts := quoteKeys(keys)
	alts = append(alts,
		`0(?:\.\d{1,4})?`,
		`1(?:\.0{1,4})?`,
		`calc\([^)]+\)`,
		`var\(--[\w-]+\)`,
		`\[(?:0?\.\d+|[01](?:\.\d+)?)\]`,
	)
	return alts
}

func buildAngle(_ *Theme, _ string, keys []string) []string {
	alts := quoteKeys(keys)
	if len(alts) == 0 {
		alts = append(alts, genericNumber)
	}
	return append(alts,
		`\[-?\d+(?:\.\d+)?(?:deg|grad|rad|turn)\]`,
		calcArbitrary,
		varArbitrary,
	)
}

func buildGridLine(_ *Theme, _ string, keys []string) []string {
	alts := quoteKeys(keys)
	if len(alts) == 0 {
		alts = append(alts, `auto`, `\d{1,2}`)
	}
	alts = append(alts, `subgrid`)
	// Colon-free bracket content: angle:/color:/length:-typed values belong
	// to other kinds.
	return append(alts, `\[[^:\]]+\]`)
}

func buildEnumerated(_ *Theme, _ string, keys []string) []string {
	alts := quoteKeys(keys)
	return append(alts, genericNumber)
}

// opacityModifier builds the optional /opacity suffix accepted after color
// values: a configured opacity key, a bare percentage, or an arbitrary
// bracketed percentage.
func opacityModifier(theme *Theme) string {
	alts := quoteKeys(scaleKeys(theme.ScaleOf("opacity")))
	alts = append(alts, `\d{1,3}%?`, `\[\d+(?:\.\d+)?%?\]`)
	return `(?:/(?:` + strings.Join(alts, "|") + `))?`
}

// scaleKeys returns the scalar-addressable keys of a scale, DEFAULT
// excluded, deterministically ordered. Longer keys sort first so that
// regexp alternation never lets a prefix shadow a longer key.
func scaleKeys(scale Scale) []string {
	keys := make([]string, 0, len(scale))
	for k := range scale {
		if k == DefaultKey {
			continue
		}
		keys = append(keys, k)
	}
	sortKeysLongestFirst(keys)
	return keys
}

func sortKeysLongestFirst(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

func quoteKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, regexp.QuoteMeta(k))
	}
	return out
}

// negatable reports whether a scale value can appear in a negative variant:
// values must be numeric-parseable (with or without a unit) or calc()
// expressions. Keyword values like "auto" cannot be negated.
func negatable(v any) bool {
	s, ok := ScalarValue(v)
	if !ok {
		return false
	}
	if strings.HasPrefix(s, "calc(") {
		return true
	}
	num := strings.TrimRightFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	})
	if num == "" {
		return false
	}
	_, err := strconv.ParseFloat(num, 64)
	return err == nil
}
