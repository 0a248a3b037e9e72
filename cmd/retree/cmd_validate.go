package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/rcedgar/retree/go/newick"
)

// validateEnv provides the environment for the validate command.
type validateEnv struct {
	out io.Writer
}

// getValidateCmd returns the definition of the validate command.
func getValidateCmd() *cobra.Command {
	env := &validateEnv{out: os.Stdout}
	cmd := &cobra.Command{
		Use:     "validate [file...]",
		Aliases: []string{"va"},
		Short:   "Check that inputs are well-formed Newick trees.",
		Long: `
Check every input file against the Newick grammar. All files are checked
even when an earlier one fails, and every problem found is reported. Reads
stdin when no file is given.`,
		RunE: env.runValidateCmd,
	}
	return cmd
}

func (e *validateEnv) runValidateCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var errs error
	for _, name := range args {
		tree, err := validateOne(name)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %s", name, err))
			continue
		}
		logVerbose(e.out, "%s", spew.Sdump(tree))
		fmt.Fprintf(e.out, "%s: OK, %s\n", name, summarize(tree))
	}
	return errs
}

// validateOne parses the named input and returns the tree, or the first
// problem found.
func validateOne(name string) (*newick.Tree, error) {
	data, err := readInput(name)
	if err != nil {
		return nil, err
	}
	return newick.Parse(data)
}
