package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/coll-cli/coll/collection"
	"github.com/coll-cli/coll/color"
	"github.com/coll-cli/coll/icon"
	"github.com/coll-cli/coll/log"
	"github.com/coll-cli/coll/render"
	"github.com/coll-cli/coll/store"
	"github.com/coll-cli/coll/style"
	"github.com/spf13/cobra"
)

// success prints a confirmation line prefixed with the success icon.
func success(format string, args ...any) {
	fmt.Printf("%s %s", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

// indexArg parses a positional index argument.
func indexArg(raw string) int {
	i, err := strconv.Atoi(raw)
	if err != nil {
		handleErr(fmt.Errorf("invalid index: %s", raw))
	}
	return i
}

// mutate applies fn to the selected collection and prints the result.
func mutate(action string, fn func(c *collection.Collection[string]) error) {
	handleErr(mutateNamed(os.Stdout, collectionName(), action, fn))
}

// mutateNamed loads the collection stored under name, applies fn, saves it and writes a summary to w.
// Nothing is saved when fn fails.
func mutateNamed(w io.Writer, name, action string, fn func(c *collection.Collection[string]) error) error {
	c, err := store.LoadOrNew(name)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	if err := store.Save(name, c); err != nil {
		return err
	}

	log.Infof("%s %s", action, name)
	return render.Result(w, icon.Get(icon.Success), action, render.NewOutput(name, c))
}

func init() {
	rootCmd.AddCommand(addCmd, insertCmd, removeCmd, exchangeCmd, setCmd, getCmd, emptyCmd)
}

var addCmd = &cobra.Command{
	Use:     "add <value>...",
	Short:   "Append values to the end of a collection",
	Example: "coll add milk eggs bread",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mutate("added to", func(c *collection.Collection[string]) error {
			c.AddRange(args...)
			return nil
		})
	},
}

var insertCmd = &cobra.Command{
	Use:     "insert <index> <value>",
	Short:   "Insert a value at an index, shifting later values right",
	Example: "coll insert 0 first",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index := indexArg(args[0])
		mutate("inserted into", func(c *collection.Collection[string]) error {
			return c.InsertAt(index, args[1])
		})
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <index>",
	Short:   "Remove the value at an index, shifting later values left",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index := indexArg(args[0])
		mutate("removed from", func(c *collection.Collection[string]) error {
			return c.RemoveAt(index)
		})
	},
}

var exchangeCmd = &cobra.Command{
	Use:     "exchange <i> <j>",
	Short:   "Swap the values at two indices",
	Aliases: []string{"swap"},
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		i, j := indexArg(args[0]), indexArg(args[1])
		mutate("exchanged in", func(c *collection.Collection[string]) error {
			return c.Exchange(i, j)
		})
	},
}

var setCmd = &cobra.Command{
	Use:   "set <index> <value>",
	Short: "Replace the value at an index",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index := indexArg(args[0])
		mutate("updated", func(c *collection.Collection[string]) error {
			return c.Set(index, args[1])
		})
	},
}

var emptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Remove every value from a collection while keeping its capacity",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mutate("emptied", func(c *collection.Collection[string]) error {
			c.Clear()
			return nil
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Print the value at an index",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := store.Load(collectionName())
		handleErr(err)

		item, err := c.Get(indexArg(args[0]))
		handleErr(err)
		cmd.Println(item)
	},
}

func init() {
	getCmd.SetOut(os.Stdout)
}
