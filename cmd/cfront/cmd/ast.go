package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/barun-bash/cfront/internal/cmdutil"
)

var astFormat string

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of a source file",
	Long: `Parses a file and prints its syntax tree as JSON or YAML, or as
canonical source with "--format source".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnSources(cmd, args, func(env *cmdutil.Env, name, source string) int {
			return cmdutil.RunAST(cmd.OutOrStdout(), cmd.ErrOrStderr(), env, name, source, astFormat)
		})
	},
}

func init() {
	astCmd.Flags().StringVarP(&astFormat, "format", "f", "json", "output format: "+strings.Join(cmdutil.ASTFormats, ", "))
	_ = astCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return cmdutil.ASTFormats, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(astCmd)
}
