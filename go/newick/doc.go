/*
Package newick parses phylogenetic trees written in the Newick format.

A Newick string describes a tree with nested parentheses, where any node may
carry an optional label and an optional branch length:

	tree     := subtree ';'
	subtree  := leaf | internal
	internal := '(' subtree (',' subtree)* ')' [label] [':' number]
	leaf     := [label] [':' number]

Because every element of a leaf is optional, forms like "(,);" are valid and
describe a root with two unlabeled leaves. Labels may be quoted with single
or double quotes to include delimiters or whitespace, bracketed comments
"[...]" are skipped like whitespace, and nesting depth is unbounded.

The format is described at https://en.wikipedia.org/wiki/Newick_format.
*/
package newick
