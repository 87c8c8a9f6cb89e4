package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/cfront/internal/cmdutil"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnSources(cmd, args, func(env *cmdutil.Env, name, source string) int {
			return cmdutil.RunTokens(cmd.OutOrStdout(), cmd.ErrOrStderr(), env, name, source, tokensFormat)
		})
	},
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "text", "output format: text or json")
	rootCmd.AddCommand(tokensCmd)
}
