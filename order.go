package twlint

import (
	"sort"
)

// Oracle assigns a sort key to a classname. A false return means the class
// has no defined position; such classes keep their relative order and sort
// after every keyed class.
type Oracle func(class string) (key int, ok bool)

// OrderResult is the outcome of sorting one class string.
type OrderResult struct {
	// Sorted is the class text with tokens reordered and duplicates
	// removed, original whitespace layout preserved.
	Sorted string

	// Changed reports whether Sorted differs from the input.
	Changed bool

	// Duplicates lists classnames that appeared more than once; each
	// repeated name is listed once per removed occurrence.
	Duplicates []string
}

// Oracle returns the analyzer's default ordering oracle: classes sort by
// their taxonomy leaf position, with variant-prefixed classes after their
// bare counterparts. Unrecognized classes have no key.
func (a *Analyzer) Oracle() Oracle {
	return func(class string) (int, bool) {
		tok := a.parser.Parse(class, 0)
		if !tok.Classified() {
			return 0, false
		}
		return tok.LeafIndex*16 + variantRank(tok.Variants), true
	}
}

// SortClassText sorts a class string with the default oracle.
func (a *Analyzer) SortClassText(text string) OrderResult {
	return a.SortClassTextWith(text, a.Oracle())
}

// SortClassTextWith sorts a class string with a caller-provided oracle. The
// sort is stable: equal keys and keyless classes keep their input order.
func (a *Analyzer) SortClassTextWith(text string, oracle Oracle) OrderResult {
	tokens := a.parser.ParseAll(text)
	if len(tokens) == 0 {
		return OrderResult{Sorted: text}
	}

	type keyed struct {
		name string
		key  int
		ok   bool
	}
	ks := make([]keyed, len(tokens))
	for i, tok := range tokens {
		key, ok := oracle(tok.Name)
		ks[i] = keyed{name: tok.Name, key: key, ok: ok}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].ok != ks[j].ok {
			return ks[i].ok
		}
		if !ks[i].ok {
			return false
		}
		return ks[i].key < ks[j].key
	})

	var duplicates []string
	seen := make(map[string]bool, len(ks))
	names := make([]string, 0, len(ks))
	for _, k := range ks {
		if seen[k.name] {
			duplicates = append(duplicates, k.name)
			continue
		}
		seen[k.name] = true
		names = append(names, k.name)
	}

	sorted := rebuild(tokens, names)
	return OrderResult{
		Sorted:     sorted,
		Changed:    sorted != text,
		Duplicates: duplicates,
	}
}
