package newick

import (
	"github.com/rcedgar/retree/go/util"
)

// Node is a single vertex of a parsed tree. Label is empty when the source
// omitted it and Length is nil when no branch length was given; both may be
// absent on any node regardless of leaf/internal status. Length is the
// length of the edge from the node to its parent.
type Node struct {
	Label    string
	Length   *float64
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits n and every descendant, each node before its children and
// children in source order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// LeafSet returns the set of labels on all leaves at or below n. Unlabeled
// leaves contribute nothing, so the set may be smaller than the leaf count.
func (n *Node) LeafSet() util.StringSet {
	set := util.StringSet{}
	n.collectLeaves(set)
	return set
}

func (n *Node) collectLeaves(set util.StringSet) {
	if n.IsLeaf() {
		if n.Label != "" {
			set[n.Label] = true
		}
		return
	}
	for _, c := range n.Children {
		c.collectLeaves(set)
	}
}

// Tree wraps the root node of a successfully parsed Newick string and is
// immutable once built. Newick does not distinguish rooted from unrooted
// trees; an unrooted tree is written with an arbitrary node as pseudo-root.
type Tree struct {
	Root *Node
}

// Nodes returns every node in preorder. Display code identifies nodes by
// their position in this slice.
func (t *Tree) Nodes() []*Node {
	var ret []*Node
	t.Root.Walk(func(n *Node) {
		ret = append(ret, n)
	})
	return ret
}

// NodeCount returns the total number of nodes in the tree.
func (t *Tree) NodeCount() int {
	n := 0
	t.Root.Walk(func(*Node) {
		n++
	})
	return n
}

// LeafCount returns the number of leaves in the tree.
func (t *Tree) LeafCount() int {
	n := 0
	t.Root.Walk(func(nd *Node) {
		if nd.IsLeaf() {
			n++
		}
	})
	return n
}

// BinaryNodeCount returns the number of internal nodes with exactly two
// children.
func (t *Tree) BinaryNodeCount() int {
	n := 0
	t.Root.Walk(func(nd *Node) {
		if len(nd.Children) == 2 {
			n++
		}
	})
	return n
}

// NonBinaryNodeCount returns the number of internal nodes with a child count
// other than two, i.e. unary nodes and polytomies.
func (t *Tree) NonBinaryNodeCount() int {
	n := 0
	t.Root.Walk(func(nd *Node) {
		if k := len(nd.Children); k != 0 && k != 2 {
			n++
		}
	})
	return n
}

// LeafSet returns the set of leaf labels of the whole tree.
func (t *Tree) LeafSet() util.StringSet {
	return t.Root.LeafSet()
}

// Clusters returns the tree's bipartition profile: the leaf-label set below
// every internal node, excluding the root and any node whose set equals the
// full leaf set, which carry no topological information. Duplicate label
// sets are reported once. Order is deterministic for a given tree, children
// before parents.
func (t *Tree) Clusters() []util.StringSet {
	var all []util.StringSet
	var walk func(n *Node) util.StringSet
	walk = func(n *Node) util.StringSet {
		if n.IsLeaf() {
			set := util.StringSet{}
			if n.Label != "" {
				set[n.Label] = true
			}
			return set
		}
		set := util.StringSet{}
		for _, c := range n.Children {
			set = set.Union(walk(c))
		}
		if n != t.Root {
			all = append(all, set)
		}
		return set
	}
	full := walk(t.Root)

	var ret []util.StringSet
	for _, c := range all {
		if c.Equals(full) {
			continue
		}
		dup := false
		for _, u := range ret {
			if u.Equals(c) {
				dup = true
				break
			}
		}
		if !dup {
			ret = append(ret, c)
		}
	}
	return ret
}
