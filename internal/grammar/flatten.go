package grammar

// Flatten walks the taxonomy depth-first and collects every leaf's raw
// template in taxonomy order.
func Flatten(nodes []Node) []string {
	leaves := Leaves(nodes)
	templates := make([]string, len(leaves))
	for i, l := range leaves {
		templates[i] = l.Template
	}
	return templates
}

// FlattenConfigKeys produces the config key per leaf ("" when the leaf is
// not theme-backed), positionally parallel to Flatten's output.
func FlattenConfigKeys(nodes []Node) []string {
	leaves := Leaves(nodes)
	keys := make([]string, len(leaves))
	for i, l := range leaves {
		keys[i] = l.ConfigKey
	}
	return keys
}

// Leaves flattens the taxonomy into depth-first leaf order, recording each
// leaf's index and nearest enclosing group name.
func Leaves(nodes []Node) []FlatLeaf {
	var out []FlatLeaf
	for _, n := range nodes {
		collectLeaves(n, "", &out)
	}
	return out
}

func collectLeaves(n Node, parent string, out *[]FlatLeaf) {
	switch t := n.(type) {
	case *Leaf:
		*out = append(*out, FlatLeaf{Leaf: t, Parent: parent, Index: len(*out)})
	case *Group:
		for _, child := range t.Children {
			collectLeaves(child, t.Name, out)
		}
	}
}
