package cmd

import (
	"os"
	"strings"

	"github.com/coll-cli/coll/color"
	"github.com/coll-cli/coll/config"
	"github.com/coll-cli/coll/constant"
	"github.com/coll-cli/coll/style"
	"github.com/coll-cli/coll/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envName maps a config key to its environment variable.
func envName(key string) string {
	if key == where.EnvConfigPath || key == where.EnvStorePath {
		return key
	}
	return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(key))
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the supported environment variables",
	Long:  `Display the supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := append(slices.Clone(config.EnvExposed), where.EnvConfigPath, where.EnvStorePath)
		slices.Sort(envs)

		for _, env := range lo.Map(envs, func(k string, _ int) string { return envName(k) }) {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
