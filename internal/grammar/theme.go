package grammar

import "strconv"

// Scale is a named mapping of suffix keys to CSS values. A value is either a
// scalar (string or number) or a nested Scale, as used by multi-level color
// palettes like blue: {500: "#3b82f6"}.
type Scale map[string]any

// DefaultKey is the reserved scale key meaning the bare property with no
// suffix is valid (e.g. "rounded" when borderRadius has a DEFAULT entry).
const DefaultKey = "DEFAULT"

// DarkMode describes how the dark: variant is enabled.
type DarkMode struct {
	// Mode is "media" or "class".
	Mode string
	// Selector holds the class selector when Mode is "class",
	// e.g. ".dark" or a custom compound selector.
	Selector string
}

// Theme is a resolved configuration snapshot. It is treated as immutable for
// its whole lifetime; a config reload produces a new instance. The pattern
// cache keys entries by instance identity, so two structurally equal themes
// built separately never share compiled patterns.
type Theme struct {
	// Prefix is an optional class-name prefix prepended to every utility
	// (e.g. "tw-" turns p-4 into tw-p-4).
	Prefix string

	DarkMode DarkMode

	// Scales maps a property name (e.g. "padding", "colors") to its scale.
	Scales map[string]Scale
}

// ScaleOf returns the scale configured for the given property name, or an
// empty scale when the property is absent. Absence is a valid, common case:
// themes routinely omit properties they don't customize.
func (t *Theme) ScaleOf(property string) Scale {
	if t == nil || t.Scales == nil {
		return Scale{}
	}
	scale, ok := t.Scales[property]
	if !ok || scale == nil {
		return Scale{}
	}
	return scale
}

// Nested reports whether a scale value is itself a nested scale.
func Nested(v any) (Scale, bool) {
	switch s := v.(type) {
	case Scale:
		return s, true
	case map[string]any:
		return Scale(s), true
	default:
		return nil, false
	}
}

// ScalarValue renders a scalar scale value as its CSS text. Nested scales
// return "" and false.
func ScalarValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}
