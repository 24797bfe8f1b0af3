package cmd

import (
	"encoding/json"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/coll-cli/coll/key"
	"github.com/coll-cli/coll/render"
	"github.com/coll-cli/coll/store"
	"github.com/coll-cli/coll/style"
	"github.com/coll-cli/coll/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	showCmd.Flags().BoolP("capacity", "c", false, "Show the capacity next to the element count")
	lo.Must0(viper.BindPFlag(key.CollectionShowCapacity, showCmd.Flags().Lookup("capacity")))
}

// showCmd prints a stored collection.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the contents of a stored collection",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name := collectionName()
		c, err := store.Load(name)
		handleErr(err)

		out := render.NewOutput(name, c)
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(render.JSON(os.Stdout, out))
			return
		}

		options := render.Options{ShowCapacity: viper.GetBool(key.CollectionShowCapacity)}
		if viper.GetBool(key.CollectionWrap) {
			if width, _, err := util.TerminalSize(); err == nil {
				options.Width = util.Max(width, 20)
			}
		}
		handleErr(render.Text(os.Stdout, out, options))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("filter", "f", "", "Only list names that fuzzily match the filter")
	listCmd.SetOut(os.Stdout)
}

// listCmd prints the names of stored collections.
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored collections",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names, err := store.Names(lo.Must(cmd.Flags().GetString("filter")))
		handleErr(err)

		current := collectionName()
		for _, name := range names {
			if name == current {
				cmd.Println(style.Bold(name) + style.Faint(" (current)"))
			} else {
				cmd.Println(name)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(dropCmd)
	dropCmd.Flags().BoolP("yes", "y", false, "Drop without asking for confirmation")
}

// dropCmd deletes a stored collection.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete a stored collection",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name := collectionName()

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: "Drop collection " + name + "?",
				Default: false,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		handleErr(store.Remove(name))
		success("dropped %s\n", name)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd prints the JSON schema of "show --json" output.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of structured show output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&render.Output{})))
	},
}
