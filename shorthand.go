package twlint

import (
	"sort"
	"strings"

	"github.com/yacobolo/twlint/internal/grammar"
)

// Collapse describes one shorthand substitution: the classes consumed and
// the single class that replaces them.
type Collapse struct {
	Originals   []string
	Replacement string
}

// ShorthandResult is the outcome of shorthand collapsing one class string.
type ShorthandResult struct {
	// Text is the class string with every collapse applied. Each
	// replacement sits at the position of its earliest consumed class.
	Text string

	Changed   bool
	Collapses []Collapse
}

// complexRule describes a collapse that crosses taxonomy groups. Exact
// rules require a fixed set of classes; stem rules require one class per
// stem sharing a single value.
type complexRule struct {
	replacement string
	exact       []string
	stems       []string
}

var complexRules = []complexRule{
	{replacement: "truncate", exact: []string{"overflow-hidden", "text-ellipsis", "whitespace-nowrap"}},
	{replacement: "size-", stems: []string{"w-", "h-"}},
}

// workToken is a shorthand candidate during collapsing. Synthesized
// replacements become workTokens themselves so collapses chain (left+right
// to x, then x+y to the bare form).
type workToken struct {
	name      string
	variants  string
	important bool
	value     string
	group     string
	axis      string
	body      string
	index     int
	consumed  bool
}

// CollapseShorthand rewrites a class string using shorthand utilities where
// a set of classes is exactly equivalent to one: axis and edge utilities
// fold into their parent form when every part carries the same value, and
// cross-group combinations like overflow-hidden text-ellipsis
// whitespace-nowrap fold into their dedicated shorthand.
func (a *Analyzer) CollapseShorthand(text string) ShorthandResult {
	tokens := a.parser.ParseAll(text)
	if len(tokens) == 0 {
		return ShorthandResult{Text: text}
	}

	work := make([]*workToken, 0, len(tokens))
	for _, tok := range tokens {
		w := &workToken{
			name:      tok.Name,
			variants:  tok.Variants,
			important: tok.Important,
			value:     tok.Value,
			body:      tok.Body,
			index:     tok.Index,
		}
		if tok.Classified() {
			w.group = tok.ParentType
			w.axis = tok.Shorthand
		}
		work = append(work, w)
	}

	var collapses []Collapse
	for {
		c, ok := a.collapseOnce(&work)
		if !ok {
			break
		}
		collapses = append(collapses, c)
	}

	if len(collapses) == 0 {
		return ShorthandResult{Text: text}
	}

	sort.Slice(work, func(i, j int) bool { return work[i].index < work[j].index })
	names := make([]string, 0, len(work))
	for _, w := range work {
		names = append(names, w.name)
	}

	out := rebuild(tokens, names)
	return ShorthandResult{Text: out, Changed: out != text, Collapses: collapses}
}

// collapseOnce applies the first available collapse and reports it. Exact
// complex rules run before stem rules, and full collapses take precedence
// over axis collapses within a group.
func (a *Analyzer) collapseOnce(work *[]*workToken) (Collapse, bool) {
	for _, rule := range complexRules {
		if c, ok := a.applyComplexRule(work, rule); ok {
			return c, true
		}
	}
	return a.applyAxisCollapse(work)
}

func (a *Analyzer) applyComplexRule(work *[]*workToken, rule complexRule) (Collapse, bool) {
	type bucketKey struct {
		variants  string
		important bool
		value     string
	}
	buckets := make(map[bucketKey][]*workToken)
	var keys []bucketKey
	for _, w := range *work {
		if w.consumed {
			continue
		}
		key := bucketKey{variants: w.variants, important: w.important}
		if len(rule.stems) > 0 {
			key.value = w.value
		}
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], w)
	}

	for _, key := range keys {
		members := buckets[key]
		var consumed []*workToken
		if len(rule.exact) > 0 {
			consumed = matchExact(members, rule.exact, a.theme.Prefix)
		} else if key.value != "" {
			consumed = matchStems(members, rule.stems, a.theme.Prefix)
		}
		if consumed == nil {
			continue
		}

		name := a.synthesize(key.variants, key.important, rule.replacement, key.value)
		if len(rule.stems) > 0 && !a.resolvesToBody(name, rule.replacement) {
			continue
		}
		return a.replace(work, consumed, name), true
	}
	return Collapse{}, false
}

// matchExact finds one token per needle, matching on the body+value form
// so variants and the important marker are already factored out.
func matchExact(members []*workToken, needles []string, prefix string) []*workToken {
	var consumed []*workToken
	for _, needle := range needles {
		found := false
		for _, w := range members {
			if w.body+w.value == prefix+needle {
				consumed = append(consumed, w)
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return consumed
}

// matchStems finds one token per stem; members already share one value.
func matchStems(members []*workToken, stems []string, prefix string) []*workToken {
	var consumed []*workToken
	for _, stem := range stems {
		found := false
		for _, w := range members {
			if w.body == prefix+stem {
				consumed = append(consumed, w)
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return consumed
}

func (a *Analyzer) applyAxisCollapse(work *[]*workToken) (Collapse, bool) {
	type bucketKey struct {
		group     string
		variants  string
		important bool
		value     string
	}
	buckets := make(map[bucketKey]map[string]*workToken)
	var keys []bucketKey
	for _, w := range *work {
		if w.consumed || w.group == "" || w.axis == "" {
			continue
		}
		key := bucketKey{group: w.group, variants: w.variants, important: w.important, value: w.value}
		if buckets[key] == nil {
			buckets[key] = make(map[string]*workToken)
			keys = append(keys, key)
		}
		if buckets[key][w.axis] == nil {
			buckets[key][w.axis] = w
		}
	}

	for _, key := range keys {
		axes := buckets[key]
		leaves := a.axisLeaf[key.group]
		if leaves == nil {
			continue
		}

		// Four corners fold straight into the bare form.
		if corners := pick(axes, grammar.AxisTopLeft, grammar.AxisTopRight, grammar.AxisBottomLeft, grammar.AxisBottomRight); corners != nil {
			if c, ok := a.tryCollapse(work, leaves, grammar.AxisAll, key.variants, key.important, key.value, corners); ok {
				return c, true
			}
		}

		xParts := pick(axes, grammar.AxisX)
		if xParts == nil {
			xParts = pick(axes, grammar.AxisLeft, grammar.AxisRight)
		}
		yParts := pick(axes, grammar.AxisY)
		if yParts == nil {
			yParts = pick(axes, grammar.AxisTop, grammar.AxisBottom)
		}

		if xParts != nil && yParts != nil {
			if c, ok := a.tryCollapse(work, leaves, grammar.AxisAll, key.variants, key.important, key.value, append(xParts, yParts...)); ok {
				return c, true
			}
		}
		if parts := pick(axes, grammar.AxisLeft, grammar.AxisRight); parts != nil {
			if c, ok := a.tryCollapse(work, leaves, grammar.AxisX, key.variants, key.important, key.value, parts); ok {
				return c, true
			}
		}
		if parts := pick(axes, grammar.AxisTop, grammar.AxisBottom); parts != nil {
			if c, ok := a.tryCollapse(work, leaves, grammar.AxisY, key.variants, key.important, key.value, parts); ok {
				return c, true
			}
		}
	}
	return Collapse{}, false
}

// pick returns the tokens for the given axes, or nil unless all are present.
func pick(axes map[string]*workToken, want ...string) []*workToken {
	out := make([]*workToken, 0, len(want))
	for _, axis := range want {
		w, ok := axes[axis]
		if !ok {
			return nil
		}
		out = append(out, w)
	}
	return out
}

// tryCollapse synthesizes the collapsed class for the target axis and
// verifies it parses back to that leaf under the active theme; a value
// valid for an edge utility is not automatically valid for its parent.
func (a *Analyzer) tryCollapse(work *[]*workToken, leaves map[string]grammar.FlatLeaf, axis, variants string, important bool, value string, consumed []*workToken) (Collapse, bool) {
	leaf, ok := leaves[axis]
	if !ok {
		return Collapse{}, false
	}
	name := a.synthesize(variants, important, leaf.Body, value)
	if !a.resolvesToLeaf(name, leaf.Index) {
		return Collapse{}, false
	}
	return a.replace(work, consumed, name), true
}

// synthesize builds a full classname from its parts. An empty value trims
// the body's trailing dash (p- becomes p is invalid, rounded- becomes
// rounded); a negative value moves its dash in front of the body.
func (a *Analyzer) synthesize(variants string, important bool, body, value string) string {
	var sb strings.Builder
	sb.WriteString(variants)
	if important {
		sb.WriteByte('!')
	}
	sb.WriteString(a.theme.Prefix)
	switch {
	case value == "":
		sb.WriteString(strings.TrimSuffix(body, "-"))
	case strings.HasPrefix(value, "-"):
		sb.WriteByte('-')
		sb.WriteString(body)
		sb.WriteString(value[1:])
	default:
		sb.WriteString(body)
		sb.WriteString(value)
	}
	return sb.String()
}

// resolvesToLeaf reports whether a synthesized classname parses back to
// the given taxonomy leaf.
func (a *Analyzer) resolvesToLeaf(name string, leafIndex int) bool {
	tok := a.parser.Parse(name, 0)
	return tok.LeafIndex == leafIndex
}

// resolvesToBody reports whether a synthesized classname parses to a leaf
// with the given body stem.
func (a *Analyzer) resolvesToBody(name, body string) bool {
	tok := a.parser.Parse(name, 0)
	return tok.Classified() && tok.Body == a.theme.Prefix+body
}

// replace consumes the given tokens and appends the synthesized
// replacement at the earliest consumed position.
func (a *Analyzer) replace(work *[]*workToken, consumed []*workToken, name string) Collapse {
	c := Collapse{Replacement: name}
	minIndex := consumed[0].index
	sort.Slice(consumed, func(i, j int) bool { return consumed[i].index < consumed[j].index })
	for _, w := range consumed {
		w.consumed = true
		if w.index < minIndex {
			minIndex = w.index
		}
		c.Originals = append(c.Originals, w.name)
	}

	replacement := a.parser.Parse(name, 0)
	kept := make([]*workToken, 0, len(*work))
	for _, w := range *work {
		if !w.consumed {
			kept = append(kept, w)
		}
	}
	kept = append(kept, &workToken{
		name:      name,
		variants:  replacement.Variants,
		important: replacement.Important,
		value:     replacement.Value,
		group:     replacement.ParentType,
		axis:      replacement.Shorthand,
		body:      replacement.Body,
		index:     minIndex,
	})
	*work = kept
	return c
}
