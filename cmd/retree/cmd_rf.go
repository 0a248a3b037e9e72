package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rcedgar/retree/go/newick"
	"github.com/rcedgar/retree/go/rf"
	"github.com/rcedgar/retree/go/rterr"
	"github.com/rcedgar/retree/go/rtlog"
)

// rfEnv provides the environment for the rf command.
type rfEnv struct {
	out io.Writer
}

// getRFCmd returns the definition of the rf command.
func getRFCmd() *cobra.Command {
	env := &rfEnv{out: os.Stdout}
	cmd := &cobra.Command{
		Use:   "rf [file1] [file2]",
		Short: "Calculate the Robinson-Foulds distance between two trees.",
		Long: `
Calculate the Robinson-Foulds distance between two trees.

Each file must contain one tree in Newick format. The distance counts the
subtrees (sets of leaf labels under an internal branch) found in one tree
but not the other. Branch lengths and child order are ignored.

See https://en.wikipedia.org/wiki/Robinson%E2%80%93Foulds_metric`,
		Args: cobra.ExactArgs(2),
		RunE: env.runRFCmd,
	}
	return cmd
}

func (e *rfEnv) runRFCmd(cmd *cobra.Command, args []string) error {
	trees := make([]*newick.Tree, 2)
	var eg errgroup.Group
	for i, name := range args {
		i, name := i, name
		eg.Go(func() error {
			data, err := readInput(name)
			if err != nil {
				return rterr.Wrapf(err, "reading %s", name)
			}
			tree, err := newick.Parse(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %s", name, err)
			}
			rtlog.Infof("parsed %s: %d nodes, %d leaves", name, tree.NodeCount(), tree.LeafCount())
			trees[i] = tree
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	res := rf.Distance(trees[0], trees[1])
	reportDistance(e.out, args[0], args[1], res)
	return nil
}

// reportDistance prints the subtree counts for both trees followed by the
// distance and its normalized form.
func reportDistance(w io.Writer, name1, name2 string, res rf.Result) {
	fmt.Fprintf(w, "tree1 %s\n", name1)
	fmt.Fprintf(w, "tree2 %s\n", name2)
	fmt.Fprintf(w, "%d subtrees in 1\n", res.Clusters1)
	fmt.Fprintf(w, "%d subtrees in 2\n", res.Clusters2)
	fmt.Fprintf(w, "%d subtrees in 1 not in 2\n", len(res.OnlyIn1))
	fmt.Fprintf(w, "%d subtrees in 2 not in 1\n", len(res.OnlyIn2))
	for _, c := range res.OnlyIn1 {
		logVerbose(w, "only in 1: {%s}\n", rf.Format(c))
	}
	for _, c := range res.OnlyIn2 {
		logVerbose(w, "only in 2: {%s}\n", rf.Format(c))
	}
	fmt.Fprintf(w, "R-F metric distance = %d\n", res.Distance)
	fmt.Fprintf(w, "Normalized distance (range 0 to 1) = %6.4g\n", res.Normalized)
}
