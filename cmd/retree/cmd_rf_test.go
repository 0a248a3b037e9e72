package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcedgar/retree/go/newick"
	"github.com/rcedgar/retree/go/rf"
	"github.com/rcedgar/retree/go/testutils"
	"github.com/rcedgar/retree/go/testutils/unittest"
)

// parseFixture parses a tree from the testdata directory.
func parseFixture(t *testing.T, name string) *newick.Tree {
	tree, err := newick.Parse(testutils.MustReadFile(name))
	require.NoError(t, err)
	return tree
}

// fixturePath returns the full path of a file in the testdata directory.
func fixturePath(t *testing.T, name string) string {
	dir, err := testutils.TestDataDir()
	require.NoError(t, err)
	return filepath.Join(dir, name)
}

func TestReportDistance(t *testing.T) {
	unittest.MediumTest(t)

	t1 := parseFixture(t, "primates.tree")
	t2 := parseFixture(t, "primates_alt.tree")

	var buf bytes.Buffer
	reportDistance(&buf, "one", "two", rf.Distance(t1, t2))

	expected := `tree1 one
tree2 two
3 subtrees in 1
3 subtrees in 2
1 subtrees in 1 not in 2
1 subtrees in 2 not in 1
R-F metric distance = 2
Normalized distance (range 0 to 1) = 0.3333
`
	require.Equal(t, expected, buf.String())
}

func TestReportDistanceVerbose(t *testing.T) {
	unittest.MediumTest(t)

	flagVerbose = true
	defer func() { flagVerbose = false }()

	t1 := parseFixture(t, "primates.tree")
	t2 := parseFixture(t, "primates_alt.tree")

	var buf bytes.Buffer
	reportDistance(&buf, "one", "two", rf.Distance(t1, t2))

	require.Contains(t, buf.String(), "only in 1: {Gorilla,Hylobates,Pongo}\n")
	require.Contains(t, buf.String(), "only in 2: {Gorilla,Homo,Pan}\n")
}

func TestRunRFCmd(t *testing.T) {
	unittest.MediumTest(t)

	one := fixturePath(t, "primates.tree")
	two := fixturePath(t, "primates_alt.tree")

	var buf bytes.Buffer
	env := &rfEnv{out: &buf}
	require.NoError(t, env.runRFCmd(nil, []string{one, two}))

	require.Contains(t, buf.String(), "tree1 "+one+"\n")
	require.Contains(t, buf.String(), "tree2 "+two+"\n")
	require.Contains(t, buf.String(), "R-F metric distance = 2\n")
	require.Contains(t, buf.String(), "Normalized distance (range 0 to 1) = 0.3333\n")
}

func TestRunRFCmdIdenticalTrees(t *testing.T) {
	unittest.MediumTest(t)

	one := fixturePath(t, "primates.tree")

	var buf bytes.Buffer
	env := &rfEnv{out: &buf}
	require.NoError(t, env.runRFCmd(nil, []string{one, one}))

	require.Contains(t, buf.String(), "0 subtrees in 1 not in 2\n")
	require.Contains(t, buf.String(), "0 subtrees in 2 not in 1\n")
	require.Contains(t, buf.String(), "R-F metric distance = 0\n")
}

func TestRunRFCmdBadInput(t *testing.T) {
	unittest.MediumTest(t)

	var buf bytes.Buffer
	env := &rfEnv{out: &buf}
	err := env.runRFCmd(nil, []string{fixturePath(t, "broken.tree"), fixturePath(t, "primates.tree")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.tree")
	require.Contains(t, err.Error(), "never closed")
}

func TestRunRFCmdMissingFile(t *testing.T) {
	unittest.MediumTest(t)

	var buf bytes.Buffer
	env := &rfEnv{out: &buf}
	err := env.runRFCmd(nil, []string{fixturePath(t, "no_such_file.tree"), fixturePath(t, "primates.tree")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading")
	require.Contains(t, err.Error(), "no_such_file.tree")
}
