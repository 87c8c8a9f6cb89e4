package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/cfront/internal/cmdutil"
	"github.com/barun-bash/cfront/internal/profile"
)

var profilesExport string

var profilesCmd = &cobra.Command{
	Use:   "profiles [name]",
	Short: "List language profiles or show one in detail",
	Long: `Without arguments, lists the built-in profiles and those defined in
.cfront/config.toml; the active one is marked with *. With a name, shows
that profile's keywords and constructs. --export writes it to a .toml or
.yaml file usable with --profile-file.`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return profile.BuiltinNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return exitWith(cmdutil.RunProfiles(cmd.OutOrStdout(), cmd.ErrOrStderr(), env, name, profilesExport))
	},
}

func init() {
	profilesCmd.Flags().StringVar(&profilesExport, "export", "", "write the named profile to this file")
	rootCmd.AddCommand(profilesCmd)
}
