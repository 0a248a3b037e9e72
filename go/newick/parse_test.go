package newick

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcedgar/retree/go/testutils"
)

func TestParseMinimal(t *testing.T) {
	tree, err := Parse("(,);")
	require.NoError(t, err)
	root := tree.Root
	require.Equal(t, "", root.Label)
	require.Nil(t, root.Length)
	require.Len(t, root.Children, 2)
	for _, c := range root.Children {
		require.True(t, c.IsLeaf())
		require.Equal(t, "", c.Label)
		require.Nil(t, c.Length)
	}
}

func TestParseLabelsAndLengths(t *testing.T) {
	tree, err := Parse("(A:0.1,(B,C)D:0.5)root;")
	require.NoError(t, err)
	root := tree.Root
	require.Equal(t, "root", root.Label)
	require.Nil(t, root.Length)
	require.Len(t, root.Children, 2)

	a := root.Children[0]
	require.True(t, a.IsLeaf())
	require.Equal(t, "A", a.Label)
	require.NotNil(t, a.Length)
	require.Equal(t, 0.1, *a.Length)

	d := root.Children[1]
	require.False(t, d.IsLeaf())
	require.Equal(t, "D", d.Label)
	require.NotNil(t, d.Length)
	require.Equal(t, 0.5, *d.Length)
	require.Len(t, d.Children, 2)
	require.Equal(t, "B", d.Children[0].Label)
	require.Equal(t, "C", d.Children[1].Label)
}

func TestParseSingleLeaf(t *testing.T) {
	tree, err := Parse("A;")
	require.NoError(t, err)
	require.True(t, tree.Root.IsLeaf())
	require.Equal(t, "A", tree.Root.Label)

	// A bare semicolon is a tree of one unlabeled leaf.
	tree, err = Parse(";")
	require.NoError(t, err)
	require.True(t, tree.Root.IsLeaf())
	require.Equal(t, "", tree.Root.Label)
}

func TestParseUnaryPreserved(t *testing.T) {
	tree, err := Parse("((B,C));")
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 1)
	inner := tree.Root.Children[0]
	require.Len(t, inner.Children, 2)
}

func TestParseAnonymousBranchLength(t *testing.T) {
	tree, err := Parse("(:0.5,B);")
	require.NoError(t, err)
	c := tree.Root.Children[0]
	require.Equal(t, "", c.Label)
	require.NotNil(t, c.Length)
	require.Equal(t, 0.5, *c.Length)
}

func TestParseQuotedLabels(t *testing.T) {
	tree, err := Parse(`('Homo sapiens':1,"Pan paniscus":2);`)
	require.NoError(t, err)
	require.Equal(t, "Homo sapiens", tree.Root.Children[0].Label)
	require.Equal(t, "Pan paniscus", tree.Root.Children[1].Label)
}

func TestParseComments(t *testing.T) {
	tree, err := Parse("(A[one],B[two])[whole tree];")
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 2)
	require.Equal(t, "A", tree.Root.Children[0].Label)
	require.Equal(t, "B", tree.Root.Children[1].Label)
}

func TestParseDeepNesting(t *testing.T) {
	testutils.SkipIfShort(t)

	const depth = 10000
	input := strings.Repeat("(", depth) + "A" + strings.Repeat(")", depth) + ";"
	tree, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, depth+1, tree.NodeCount())
	require.Equal(t, 1, tree.LeafCount())
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		input string
		kind  ParseErrorKind
	}{
		{"", EmptyInput},
		{"   ", EmptyInput},
		{"[only a comment]", EmptyInput},
		{"(A,B;", UnbalancedParens},
		{"(A,B", UnbalancedParens},
		{"A);", UnbalancedParens},
		{"(A,B));", UnbalancedParens},
		{"(A,B)", MissingSemicolon},
		{"A", MissingSemicolon},
		{"(A B);", UnexpectedToken},
		{"(A,B);x", UnexpectedToken},
		{"(A:x,B);", UnexpectedToken},
		{"(62,63);", UnexpectedToken},
		{"(A,(B,A));", DuplicateLabel},
		{"(A,B)A;", DuplicateLabel},
	}
	for _, tc := range testCases {
		_, err := Parse(tc.input)
		require.Error(t, err, "input %q", tc.input)
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "input %q gave %v", tc.input, err)
		require.Equal(t, tc.kind, parseErr.Kind, "input %q gave %v", tc.input, err)
	}
}

func TestParseErrorPositions(t *testing.T) {
	_, err := Parse("")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, 0, parseErr.Pos)

	// An unclosed '(' is reported at the parenthesis that was never closed.
	_, err = Parse("(A,(B,C;")
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, UnbalancedParens, parseErr.Kind)
	require.Equal(t, 3, parseErr.Pos)

	_, err = Parse("(A,B)")
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, MissingSemicolon, parseErr.Kind)
	require.Equal(t, 5, parseErr.Pos)
}

func TestParseLexErrorPassthrough(t *testing.T) {
	testCases := []struct {
		input string
		kind  LexErrorKind
	}{
		{"(A,'oops);", UnterminatedQuote},
		{"(A:1.2.3,B);", InvalidNumber},
		{"(A,\x01);", UnrecognizedCharacter},
	}
	for _, tc := range testCases {
		_, err := Parse(tc.input)
		require.Error(t, err, "input %q", tc.input)
		var lexErr *LexError
		require.True(t, errors.As(err, &lexErr), "input %q gave %v", tc.input, err)
		require.Equal(t, tc.kind, lexErr.Kind, "input %q gave %v", tc.input, err)
	}
}

func TestParseTrailingWhitespaceOK(t *testing.T) {
	_, err := Parse("(A,B);\n")
	require.NoError(t, err)
}
