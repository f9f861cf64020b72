package twlint

import (
	"strconv"
	"strings"

	"github.com/yacobolo/twlint/internal/grammar"
)

// ConflictGroup is a set of distinct classnames in one class string that
// resolve to the same CSS property slot, so all but one are dead weight.
type ConflictGroup struct {
	// Classes are the conflicting names in their input order.
	Classes []string
}

// Conflicts reports groups of classes that target the same property under
// the same variants. Unrecognized classes never conflict. Exact duplicates
// are the ordering analysis' concern and are counted once here.
func (a *Analyzer) Conflicts(text string) []ConflictGroup {
	tokens := a.parser.ParseAll(text)

	type slotEntry struct {
		order int
		names []string
		seen  map[string]bool
	}
	slots := make(map[string]*slotEntry)
	var keys []string

	for _, tok := range tokens {
		if !tok.Classified() {
			continue
		}
		key := conflictKey(tok)
		entry, ok := slots[key]
		if !ok {
			entry = &slotEntry{order: len(keys), seen: make(map[string]bool)}
			slots[key] = entry
			keys = append(keys, key)
		}
		if entry.seen[tok.Name] {
			continue
		}
		entry.seen[tok.Name] = true
		entry.names = append(entry.names, tok.Name)
	}

	var groups []ConflictGroup
	for _, key := range keys {
		if entry := slots[key]; len(entry.names) > 1 {
			groups = append(groups, ConflictGroup{Classes: entry.names})
		}
	}
	return groups
}

// conflictKey identifies the property slot a parsed token occupies: the
// matched leaf plus the variant prefix, refined for bracketed values so
// that explicitly typed arbitrary values and distinct arbitrary properties
// occupy distinct slots.
func conflictKey(tok grammar.Parsed) string {
	var sb strings.Builder
	sb.WriteString(tok.Variants)
	sb.WriteByte('\x00')
	sb.WriteString(strconv.Itoa(tok.LeafIndex))

	if strings.HasPrefix(tok.Value, "[") && strings.HasSuffix(tok.Value, "]") {
		content := tok.Value[1 : len(tok.Value)-1]
		if tok.Body == "" && tok.ParentType == "Arbitrary Properties" {
			// [mask-type:luminance] and [mask-size:cover] set
			// different properties.
			if i := strings.IndexByte(content, ':'); i > 0 {
				sb.WriteByte('#')
				sb.WriteString(content[:i])
			}
			return sb.String()
		}
		if kind, _ := grammar.TypePrefix(content); kind != grammar.ArbUnknown {
			sb.WriteByte('#')
			sb.WriteString(string(kind))
		}
	}
	return sb.String()
}
