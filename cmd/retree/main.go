// Command-line application for inspecting and comparing phylogenetic trees
// in Newick format.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcedgar/retree/go/rterr"
	"github.com/rcedgar/retree/go/util"
)

// flags
var (
	flagVerbose bool
)

func main() {
	cmd := &cobra.Command{
		Use:           "retree [sub]",
		Short:         "Inspect and compare phylogenetic trees in Newick format.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print extra information while running.")
	cmd.AddCommand(getRFCmd())
	cmd.AddCommand(getDumpCmd())
	cmd.AddCommand(getValidateCmd())
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// logVerbose prints to w only when --verbose is set.
func logVerbose(w io.Writer, format string, args ...interface{}) {
	if flagVerbose {
		fmt.Fprintf(w, format, args...)
	}
}

// readInput returns the contents of the named tree file, or of stdin when
// the name is "-".
func readInput(name string) (string, error) {
	if name == "-" {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return "", rterr.Wrap(err)
		}
		return string(b), nil
	}
	var data string
	err := util.WithReadFile(name, func(f io.Reader) error {
		b, err := ioutil.ReadAll(f)
		if err != nil {
			return err
		}
		data = string(b)
		return nil
	})
	if err != nil {
		return "", rterr.Wrap(err)
	}
	return data, nil
}
