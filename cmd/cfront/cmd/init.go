package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/cfront/internal/cmdutil"
)

var initNoStarter bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create .cfront/config.toml and a starter program",
	Long: `Asks for a language profile and a color theme, then writes
.cfront/config.toml in dir (default: the current directory) and a main.cf
that checks cleanly under the chosen profile. --profile sets the default
answer. An existing config is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return exitWith(cmdutil.RunInit(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin(),
			dir, profileName, !initNoStarter))
	},
}

func init() {
	initCmd.Flags().BoolVar(&initNoStarter, "no-starter", false, "only write the config file")
	rootCmd.AddCommand(initCmd)
}
