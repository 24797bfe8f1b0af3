package cmd

import (
	"fmt"

	"github.com/coll-cli/coll/filesystem"
	"github.com/coll-cli/coll/icon"
	"github.com/coll-cli/coll/util"
	"github.com/coll-cli/coll/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearTarget defines an application artifact that can be removed from disk.
type clearTarget struct {
	name     string
	argLong  string
	argShort string
	location func() string
}

var clearTargets = []clearTarget{
	{"stored collections", "store", "s", where.Store},
	{"log files", "logs", "l", where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().BoolP(target.argLong, target.argShort, false, "clear "+target.name)
	}
}

// clearCmd removes persisted application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove stored collections or log files",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := filesystem.API().RemoveAll(target.location())
			erase()
			handleErr(err)
			success("%s cleared\n", util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
