package grammar

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ArbKind classifies the content of a bracketed arbitrary value. It drives
// the relaxed conflict grouping for typed values: text-[color:red] and
// text-[length:2rem] occupy different semantic slots even though they share
// a property body.
type ArbKind string

// Arbitrary value kinds.
const (
	ArbUnknown ArbKind = ""
	ArbColor   ArbKind = "color"
	ArbLength  ArbKind = "length"
	ArbAngle   ArbKind = "angle"
	ArbList    ArbKind = "list"
	ArbNumber  ArbKind = "number"
	ArbPercent ArbKind = "percent"
	ArbURL     ArbKind = "url"
)

// typePrefixes are the explicit disambiguation prefixes a bracketed value
// may carry.
var typePrefixes = map[string]ArbKind{
	"color":  ArbColor,
	"length": ArbLength,
	"angle":  ArbAngle,
	"list":   ArbList,
	"url":    ArbURL,
}

var angleUnits = map[string]bool{
	"deg": true, "grad": true, "rad": true, "turn": true,
}

// TypePrefix splits an explicit "kind:rest" prefix off a bracket content
// string. Content without a recognized prefix is returned unchanged with
// ArbUnknown.
func TypePrefix(content string) (ArbKind, string) {
	i := strings.IndexByte(content, ':')
	if i <= 0 {
		return ArbUnknown, content
	}
	if kind, ok := typePrefixes[content[:i]]; ok {
		return kind, content[i+1:]
	}
	return ArbUnknown, content
}

// ClassifyArbitrary determines the value kind of a bracketed arbitrary value
// (brackets excluded). An explicit type prefix wins; otherwise the content
// is lexed as a CSS component value.
func ClassifyArbitrary(content string) ArbKind {
	if kind, _ := TypePrefix(content); kind != ArbUnknown {
		return kind
	}
	return lexKind(content)
}

// lexKind classifies by lexing. The first token usually decides; a
// top-level comma anywhere makes the value a list.
func lexKind(content string) ArbKind {
	lexer := css.NewLexer(parse.NewInputString(content))

	kind := ArbUnknown
	depth := 0
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		switch tt {
		case css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				return ArbList
			}
		case css.HashToken:
			if kind == ArbUnknown {
				kind = ArbColor
			}
		case css.DimensionToken:
			if kind == ArbUnknown {
				kind = dimensionKind(string(data))
			}
		case css.PercentageToken:
			if kind == ArbUnknown {
				kind = ArbPercent
			}
		case css.NumberToken:
			if kind == ArbUnknown {
				kind = ArbNumber
			}
		case css.URLToken:
			if kind == ArbUnknown {
				kind = ArbURL
			}
		case css.FunctionToken:
			// A function token includes its opening parenthesis.
			depth++
			if kind == ArbUnknown {
				kind = functionKind(string(data))
			}
		case css.IdentToken:
			if kind == ArbUnknown {
				if _, err := csscolorparser.Parse(string(data)); err == nil {
					kind = ArbColor
				}
			}
		}
	}
	return kind
}

func dimensionKind(tok string) ArbKind {
	unit := strings.TrimLeftFunc(tok, func(r rune) bool {
		return r == '-' || r == '+' || r == '.' || (r >= '0' && r <= '9')
	})
	if angleUnits[strings.ToLower(unit)] {
		return ArbAngle
	}
	return ArbLength
}

func functionKind(tok string) ArbKind {
	name := strings.ToLower(strings.TrimSuffix(tok, "("))
	switch name {
	case "rgb", "rgba", "hsl", "hsla", "hwb", "lab", "lch", "oklab", "oklch", "color":
		return ArbColor
	case "url":
		return ArbURL
	case "calc", "min", "max", "clamp":
		return ArbLength
	default:
		return ArbUnknown
	}
}
