package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/coll-cli/coll/collection"
	"github.com/coll-cli/coll/color"
	"github.com/coll-cli/coll/icon"
	"github.com/coll-cli/coll/key"
	"github.com/coll-cli/coll/log"
	"github.com/coll-cli/coll/style"
	"github.com/coll-cli/coll/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntP("count", "c", 0, "Number of elements to append and remove")
	lo.Must0(viper.BindPFlag(key.BenchCount, benchCmd.Flags().Lookup("count")))
	benchCmd.SetOut(os.Stdout)
}

// benchCmd appends many elements to an in-memory collection and removes them again from the end.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Append and remove many elements to measure growth and removal",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		n := viper.GetInt(key.BenchCount)
		if n <= 0 {
			handleErr(fmt.Errorf("count must be positive, got %d", n))
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Appending %s...", icon.Get(icon.Progress), util.Quantify(n, "element", "elements")))
		c := collection.New[int]()
		start := time.Now()
		for i := 0; i < n; i++ {
			c.Add(i)
		}
		appended := time.Since(start)
		peak := c.Capacity()
		erase()

		erase = util.PrintErasable(fmt.Sprintf("%s Removing %s...", icon.Get(icon.Progress), util.Quantify(n, "element", "elements")))
		start = time.Now()
		for i := c.Count() - 1; i >= 0; i-- {
			handleErr(c.RemoveAt(i))
		}
		removed := time.Since(start)
		erase()

		log.WithFields(log.Fields{"count": n, "append": appended, "remove": removed}).Info("bench finished")

		label := style.Fg(color.Blue)
		cmd.Printf("%s %s\n", label("Elements:"), style.Bold(fmt.Sprint(n)))
		cmd.Printf("%s %s\n", label("Capacity:"), style.Bold(fmt.Sprint(peak)))
		cmd.Printf("%s %s\n", label("Append:  "), appended)
		cmd.Printf("%s %s\n", label("Remove:  "), removed)
		cmd.Printf("%s %s (count %d)\n", label("Result:  "), c, c.Count())
	},
}
