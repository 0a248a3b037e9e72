package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcedgar/retree/go/testutils"
	"github.com/rcedgar/retree/go/testutils/unittest"
)

func TestRunValidateCmdAllGood(t *testing.T) {
	unittest.MediumTest(t)

	one := fixturePath(t, "primates.tree")
	two := fixturePath(t, "primates_alt.tree")

	var buf bytes.Buffer
	env := &validateEnv{out: &buf}
	require.NoError(t, env.runValidateCmd(nil, []string{one, two}))

	testutils.AssertDeepEqual(t, []string{
		one + ": OK, 9 nodes, 5 leaves, 4 binary nodes, 0 non-binary internal nodes",
		two + ": OK, 9 nodes, 5 leaves, 4 binary nodes, 0 non-binary internal nodes",
	}, strings.Split(strings.TrimSpace(buf.String()), "\n"))
}

func TestRunValidateCmdKeepsGoingAfterFailure(t *testing.T) {
	unittest.MediumTest(t)

	var buf bytes.Buffer
	env := &validateEnv{out: &buf}
	err := env.runValidateCmd(nil, []string{
		fixturePath(t, "primates.tree"),
		fixturePath(t, "broken.tree"),
		fixturePath(t, "primates_alt.tree"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.tree")
	require.Contains(t, err.Error(), "unbalanced parentheses")

	// The files after the broken one are still checked.
	require.Contains(t, buf.String(), "primates.tree: OK")
	require.Contains(t, buf.String(), "primates_alt.tree: OK")
}

func TestRunValidateCmdVerbose(t *testing.T) {
	unittest.MediumTest(t)

	flagVerbose = true
	defer func() { flagVerbose = false }()

	var buf bytes.Buffer
	env := &validateEnv{out: &buf}
	require.NoError(t, env.runValidateCmd(nil, []string{fixturePath(t, "primates.tree")}))

	// The verbose dump spells out the parsed node structure.
	require.Contains(t, buf.String(), "newick.Tree")
	require.Contains(t, buf.String(), "Label:")
	require.Contains(t, buf.String(), "Hominini")
}
