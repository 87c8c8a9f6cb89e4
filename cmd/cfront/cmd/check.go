package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/cfront/internal/cmdutil"
)

var checkFormat string

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check source files for lexical and syntax errors",
	Long: `Parses each file with the active profile and reports every diagnostic
with the offending source line. Use - to read from stdin.

Exit status is 0 when all files are valid, 1 when any file has errors
and 2 when a file cannot be read.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnSources(cmd, args, func(env *cmdutil.Env, name, source string) int {
			return cmdutil.RunCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), env, name, source, checkFormat)
		})
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format: text or json")
	rootCmd.AddCommand(checkCmd)
}
