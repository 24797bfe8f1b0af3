package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coll-cli/coll/filesystem"
	"github.com/coll-cli/coll/key"
	"github.com/coll-cli/coll/script"
	"github.com/coll-cli/coll/store"
	"github.com/coll-cli/coll/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("stop-on-error", "s", false, "Abort on the first failing operation")
	lo.Must0(viper.BindPFlag(key.ScriptStopOnError, runCmd.Flags().Lookup("stop-on-error")))

	runCmd.Flags().BoolP("echo", "e", false, "Print each operation before running it")
	lo.Must0(viper.BindPFlag(key.ScriptEcho, runCmd.Flags().Lookup("echo")))

	runCmd.Flags().Bool("dry-run", false, "Run the script without saving the result")
}

// runCmd executes a script of operations against a stored collection.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a script of collection operations, one per line",
	Long: `Run a script of collection operations against a stored collection.
The script is read from the given file, or from standard input when no file is given.

Operations:
  ` + strings.Join(script.Ops(), "\n  ") + `

Blank lines and lines starting with # are ignored.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := filesystem.API().Open(args[0])
			handleErr(err)
			defer f.Close()
			in = f
		}

		name := collectionName()
		c, err := store.LoadOrNew(name)
		handleErr(err)

		report, err := script.Run(in, c, &script.Options{
			Out:         os.Stdout,
			StopOnError: viper.GetBool(key.ScriptStopOnError),
			Echo:        viper.GetBool(key.ScriptEcho),
		})

		for _, failure := range report.Errors {
			fmt.Fprintln(os.Stderr, failure)
		}
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("dry-run")) {
			handleErr(store.Save(name, c))
		}

		success("ran %s, %s failed\n",
			util.Quantify(report.Executed, "operation", "operations"),
			fmt.Sprint(report.Failed),
		)
	},
}
