package grammar

import (
	"strings"
	"unicode"
)

// Parsed is the decomposition of a single classname token. Leading and
// Trailing preserve whitespace captured around the token so analyses can
// reassemble class attribute text without disturbing its layout.
type Parsed struct {
	// Index is the token's position in the input sequence.
	Index int

	// Name is the classname with surrounding whitespace stripped,
	// variants and important marker included.
	Name string

	// Variants is the variant prefix including its trailing colon,
	// e.g. "lg:hover:". Empty when the token has no variants.
	Variants string

	// ParentType is the nearest enclosing group name of the matched
	// leaf. Empty for unclassified tokens.
	ParentType string

	// Body is the property stem of the matched token with variants,
	// important marker and value removed, e.g. "mt-" for lg:!-mt-4.
	Body string

	// Value is the matched suffix value. Negative matches carry a
	// leading dash, e.g. "-4".
	Value string

	// Shorthand is the matched leaf's axis tag, if any.
	Shorthand string

	// LeafIndex is the matched leaf's depth-first taxonomy index, or
	// -1 when no leaf matched.
	LeafIndex int

	// Deprecated is set when the matched leaf is a legacy utility.
	Deprecated bool

	Important bool
	Leading   string
	Trailing  string
}

// Classified reports whether the token matched a taxonomy leaf.
func (p Parsed) Classified() bool { return p.LeafIndex >= 0 }

// Parser matches classname tokens against a taxonomy using patterns
// compiled for one theme. It is safe for concurrent use.
type Parser struct {
	theme  *Theme
	leaves []FlatLeaf
	cache  *PatternCache
}

// NewParser builds a parser over nodes for the given theme. A nil cache
// uses the process-wide DefaultCache.
func NewParser(theme *Theme, nodes []Node, cache *PatternCache) *Parser {
	if cache == nil {
		cache = DefaultCache
	}
	return &Parser{theme: theme, leaves: Leaves(nodes), cache: cache}
}

// Parse decomposes one raw token. Raw may carry surrounding whitespace,
// which is preserved in Leading and Trailing. Parse never fails: tokens
// matching no leaf come back with LeafIndex -1 and their variant and
// important decomposition intact.
func (p *Parser) Parse(raw string, index int) Parsed {
	name, leading, trailing := trimSpace(raw)

	out := Parsed{
		Index:     index,
		Name:      name,
		LeafIndex: -1,
		Leading:   leading,
		Trailing:  trailing,
	}
	if name == "" {
		return out
	}

	variants, suffix := splitVariants(name)
	out.Variants = variants
	out.Important = strings.HasPrefix(suffix, "!")
	core := strings.TrimPrefix(suffix, "!")
	out.Body = core

	for _, leaf := range p.leaves {
		re, err := p.cache.Compile(p.theme, leaf.Template)
		if err != nil || re == nil {
			continue
		}
		m := re.FindStringSubmatch(suffix)
		if m == nil {
			continue
		}

		out.ParentType = leaf.Parent
		out.Shorthand = leaf.Shorthand
		out.LeafIndex = leaf.Index
		out.Deprecated = leaf.Deprecated
		for i, capture := range re.SubexpNames() {
			switch capture {
			case captureValue:
				if m[i] != "" {
					out.Value = m[i]
					out.Body = core[:len(core)-len(m[i])]
				}
			case captureNegative:
				if m[i] != "" {
					out.Value = "-" + m[i]
					// The minus sits after the configured prefix, not
					// necessarily at position zero.
					body := core[:len(core)-len(m[i])]
					rest, _ := strings.CutPrefix(body, p.theme.Prefix)
					out.Body = p.theme.Prefix + strings.TrimPrefix(rest, "-")
				}
			}
		}
		return out
	}
	return out
}

// ParseAll tokenizes whitespace-separated class text and parses every
// token. Whitespace runs attach to the token they precede; trailing
// whitespace attaches to the final token.
func (p *Parser) ParseAll(text string) []Parsed {
	tokens := SplitTokens(text)
	out := make([]Parsed, len(tokens))
	for i, tok := range tokens {
		out[i] = p.Parse(tok, i)
	}
	return out
}

// SplitTokens splits class attribute text into tokens, each carrying the
// whitespace run that precedes it. Trailing whitespace after the last
// classname is folded into the last token so that joining the tokens
// reproduces the input byte for byte.
func SplitTokens(text string) []string {
	var tokens []string
	i := 0
	for i < len(text) {
		start := i
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		for i < len(text) && !isSpace(text[i]) {
			i++
		}
		if i == start {
			break
		}
		tokens = append(tokens, text[start:i])
	}
	// A pure-whitespace tail has no classname of its own.
	if n := len(tokens); n > 1 && strings.TrimSpace(tokens[n-1]) == "" {
		tokens[n-2] += tokens[n-1]
		tokens = tokens[:n-1]
	}
	return tokens
}

// splitVariants separates the variant prefix from the utility suffix at
// the last colon outside square brackets, so arbitrary values such as
// grid-cols-[repeat(2,_1fr)] and arbitrary properties keep their colons.
func splitVariants(name string) (variants, suffix string) {
	depth := 0
	split := -1
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				split = i
			}
		}
	}
	if split < 0 {
		return "", name
	}
	return name[:split+1], name[split+1:]
}

func trimSpace(raw string) (name, leading, trailing string) {
	name = strings.TrimLeftFunc(raw, unicode.IsSpace)
	leading = raw[:len(raw)-len(name)]
	trimmed := strings.TrimRightFunc(name, unicode.IsSpace)
	trailing = name[len(trimmed):]
	return trimmed, leading, trailing
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
