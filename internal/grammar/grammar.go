// Package grammar implements the utility-class grammar engine: a group
// taxonomy, a theme-parameterized pattern compiler, and a classname parser
// that decomposes tokens like lg:hover:-mt-[2px] into variants, body, value
// and shorthand axis.
//
// The taxonomy is a read-only tree shared process-wide. Compiled patterns
// are memoized per theme instance (see PatternCache). Parsing never fails:
// a classname that matches no leaf yields an unclassified record.
package grammar

// Shorthand axis tags carried by taxonomy leaves. Edge tags (t/r/b/l) and
// axis tags (x/y) feed the shorthand-collapse analysis; corner tags belong
// to radius-style groups where all four corners merge into the bare form.
const (
	AxisAll         = "all"
	AxisTop         = "t"
	AxisRight       = "r"
	AxisBottom      = "b"
	AxisLeft        = "l"
	AxisX           = "x"
	AxisY           = "y"
	AxisTopLeft     = "tl"
	AxisTopRight    = "tr"
	AxisBottomLeft  = "bl"
	AxisBottomRight = "br"
)

// Node is a taxonomy tree node: either a Group of child nodes or a Leaf
// bound to a single pattern template.
type Node interface {
	Label() string
}

// Group is a pure grouping node with no pattern of its own.
type Group struct {
	Name     string
	Children []Node
}

// Label returns the group's display name.
func (g *Group) Label() string { return g.Name }

// Leaf is a terminal taxonomy node. Template is a raw matcher template whose
// ${prop} placeholders (optionally ${-prop} for negative variants) the
// pattern compiler substitutes from the active theme.
type Leaf struct {
	// Name is the display name, e.g. "padding-top".
	Name string

	Template string

	// ConfigKey names the theme property this leaf reads. Empty for leaves
	// that are not theme-backed (dark, enumerated keyword utilities).
	ConfigKey string

	// Shorthand is the axis tag, or "" when the leaf takes no part in
	// shorthand collapsing.
	Shorthand string

	// Body is the literal property stem emitted when this leaf is the
	// output of a shorthand collapse, e.g. "p-". A trailing dash is
	// dropped when the collapsed value is empty.
	Body string

	// Deprecated marks legacy utilities that still parse but should be
	// replaced, e.g. overflow-ellipsis.
	Deprecated bool
}

// Label returns the leaf's display name.
func (l *Leaf) Label() string { return l.Name }

// FlatLeaf is a leaf in depth-first taxonomy order together with its
// positional index and the name of its nearest enclosing group.
type FlatLeaf struct {
	*Leaf
	Parent string
	Index  int
}
