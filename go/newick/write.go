package newick

import (
	"strconv"
	"strings"
)

// Newick returns the canonical Newick form of the tree, terminated by ';'.
// Branch lengths use the shortest decimal representation that round-trips,
// and labels are quoted only when the lexer would not accept them unquoted,
// so parsing the result yields an identical tree.
func (t *Tree) Newick() string {
	var b strings.Builder
	t.Root.writeTo(&b)
	b.WriteByte(';')
	return b.String()
}

func (t *Tree) String() string {
	return t.Newick()
}

func (n *Node) writeTo(b *strings.Builder) {
	if !n.IsLeaf() {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			c.writeTo(b)
		}
		b.WriteByte(')')
	}
	b.WriteString(quoteLabel(n.Label))
	if n.Length != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(*n.Length, 'g', -1, 64))
	}
}

// quoteLabel returns the label quoted if it would not survive a round trip
// unquoted: it contains a delimiter or other rune the lexer rejects, or it
// starts like a number.
func quoteLabel(label string) string {
	quote := false
	for i, r := range label {
		if !isLabelRune(r) {
			quote = true
			break
		}
		if i == 0 && (isDigit(r) || r == '.') {
			quote = true
			break
		}
	}
	if !quote {
		return label
	}
	if strings.ContainsRune(label, '\'') {
		return `"` + label + `"`
	}
	return "'" + label + "'"
}
