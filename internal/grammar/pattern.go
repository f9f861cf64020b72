package grammar

import (
	"regexp"
	"strings"
)

// placeholderRe matches ${prop} and ${-prop} template tokens, capturing a
// literal dash immediately before the token so DEFAULT-keyed scales can make
// the whole "-value" segment optional.
var placeholderRe = regexp.MustCompile(`(-?)\$\{(-?)([A-Za-z]+)\}`)

// Capture group names extracted by the parser.
const (
	captureValue    = "value"
	captureNegative = "negativeValue"
)

// CompilePattern turns one leaf template into a concrete anchored matcher
// for the given theme snapshot. The result is a pure function of (template,
// theme contents); memoization lives in PatternCache. An empty result means
// the leaf matches nothing under this theme (e.g. the dark leaf when dark
// mode is media-query based).
func CompilePattern(theme *Theme, template string) string {
	valueUsed := false
	negativeUsed := false
	dead := false

	substituted := placeholderRe.ReplaceAllStringFunc(template, func(tok string) string {
		m := placeholderRe.FindStringSubmatch(tok)
		dash, negMark, prop := m[1], m[2], m[3]
		negative := negMark == "-"

		body := propertyPattern(theme, prop, negative)
		if body == "" {
			dead = true
			return ""
		}

		name := captureValue
		used := &valueUsed
		if negative {
			name = captureNegative
			used = &negativeUsed
		}
		var capture string
		if *used {
			// A regexp may not repeat a group name; later occurrences
			// match without capturing.
			capture = `(?:` + body + `)`
		} else {
			capture = `(?P<` + name + `>` + body + `)`
			*used = true
		}

		if dash == "-" {
			if !negative && scaleHasDefault(theme, prop) {
				return `(?:-` + capture + `)?`
			}
			return `-` + capture
		}
		return capture
	})

	if dead {
		return ""
	}
	return `^!?` + regexp.QuoteMeta(theme.Prefix) + `(?:` + substituted + `)$`
}

// propertyPattern builds the acceptance set for one property reference,
// dispatching through the kind table. Special pseudo-properties bypass the
// theme entirely.
func propertyPattern(theme *Theme, prop string, negative bool) string {
	switch prop {
	case "dark":
		return darkFragment(theme)
	case "arbitraryProperties":
		return `\[[a-zA-Z][\w-]*:[^\]]+\]`
	case "backgroundImageUrl":
		return `\[url\([^\]]*\)\]`
	}

	scale := theme.ScaleOf(prop)
	var keys []string
	if negative {
		keys = negativeKeys(scale)
	} else {
		keys = positiveKeys(scale)
	}

	alts := kindBuilders[kindOf(prop)](theme, prop, keys)
	return strings.Join(alts, "|")
}

// darkFragment resolves the literal classname fragment the dark: variant
// matches against. Only a class-based dark mode with a plain .classname
// selector yields a fragment; media-query dark mode and compound selectors
// have no classname to match.
func darkFragment(theme *Theme) string {
	if theme == nil || theme.DarkMode.Mode != "class" {
		return ""
	}
	sel := theme.DarkMode.Selector
	if sel == "" {
		return "dark"
	}
	if strings.HasPrefix(sel, ".") && !strings.ContainsAny(sel[1:], " .:[>+~") {
		return regexp.QuoteMeta(sel[1:])
	}
	return ""
}

func scaleHasDefault(theme *Theme, prop string) bool {
	_, ok := theme.ScaleOf(prop)[DefaultKey]
	return ok
}

// positiveKeys lists the scale keys valid in the positive variant: keys that
// are themselves negative (leading dash) belong exclusively to the negative
// variant.
func positiveKeys(scale Scale) []string {
	keys := scaleKeys(scale)
	out := keys[:0]
	for _, k := range keys {
		if strings.HasPrefix(k, "-") {
			continue
		}
		out = append(out, k)
	}
	return out
}

// negativeKeys lists the scale keys valid in the negative variant: only
// numeric or calc() values can be negated, and a key's own leading dash is
// stripped before reuse (the dash is spelled on the classname, not the key).
func negativeKeys(scale Scale) []string {
	var out []string
	for k, v := range scale {
		if k == DefaultKey || !negatable(v) {
			continue
		}
		out = append(out, strings.TrimPrefix(k, "-"))
	}
	sortKeysLongestFirst(out)
	return out
}
