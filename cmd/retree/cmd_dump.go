package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rcedgar/retree/go/newick"
	"github.com/rcedgar/retree/go/util"
)

const maxLabelWidth = 32

// dumpEnv provides the environment for the dump command.
type dumpEnv struct {
	flagShort bool

	out io.Writer
}

// getDumpCmd returns the definition of the dump command.
func getDumpCmd() *cobra.Command {
	env := &dumpEnv{out: os.Stdout}
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the node table and summary of a tree.",
		Long: `
Print one row per node of the tree, in the order the nodes appear in the
file, followed by a summary line with the node counts. Reads stdin when no
file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: env.runDumpCmd,
	}
	cmd.Flags().BoolVar(&env.flagShort, "short", false, "Print the summary line only.")
	return cmd
}

func (e *dumpEnv) runDumpCmd(cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	data, err := readInput(name)
	if err != nil {
		return err
	}
	tree, err := newick.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %s", name, err)
	}
	if !e.flagShort {
		dumpNodes(e.out, tree)
	}
	fmt.Fprintf(e.out, "%s: %s\n", name, summarize(tree))
	return nil
}

// summarize returns the one-line count summary for a tree.
func summarize(tree *newick.Tree) string {
	return fmt.Sprintf("%d nodes, %d leaves, %d binary nodes, %d non-binary internal nodes",
		tree.NodeCount(), tree.LeafCount(), tree.BinaryNodeCount(), tree.NonBinaryNodeCount())
}

// dumpNodes prints one row per node: index, parent index, label, branch
// length and child indexes. Indexes refer to rows of the same table.
func dumpNodes(w io.Writer, tree *newick.Tree) {
	nodes := tree.Nodes()
	index := make(map[*newick.Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	parent := make(map[*newick.Node]int, len(nodes))
	for _, n := range nodes {
		for _, c := range n.Children {
			parent[c] = index[n]
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"IDX", "PARENT", "LABEL", "LENGTH", "CHILDREN"})
	table.SetAutoWrapText(false)
	for i, n := range nodes {
		parentCol := "ROOT"
		if p, ok := parent[n]; ok {
			parentCol = strconv.Itoa(p)
		}
		lengthCol := ""
		if n.Length != nil {
			lengthCol = strconv.FormatFloat(*n.Length, 'g', -1, 64)
		}
		childrenCol := ""
		if !n.IsLeaf() {
			idxs := make([]string, 0, len(n.Children))
			for _, c := range n.Children {
				idxs = append(idxs, strconv.Itoa(index[c]))
			}
			childrenCol = strings.Join(idxs, " ")
		}
		table.Append([]string{
			strconv.Itoa(i),
			parentCol,
			util.Truncate(n.Label, maxLabelWidth),
			lengthCol,
			childrenCol,
		})
	}
	table.Render()
}
