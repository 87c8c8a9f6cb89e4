package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/barun-bash/cfront/internal/cmdutil"
	"github.com/barun-bash/cfront/internal/syntax"
)

var syntaxSearch string

var syntaxCmd = &cobra.Command{
	Use:   "syntax [section]",
	Short: "Show the language syntax reference",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, c := range syntax.AllCategories() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		section := ""
		if len(args) == 1 {
			section = args[0]
		}
		out := cmd.OutOrStdout()
		usePager := out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
		cmdutil.RunSyntax(out, section, syntaxSearch, usePager)
		return nil
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain [topic]",
	Short: "Explain a language topic with examples",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return cmdutil.ExplainTopicNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := ""
		if len(args) == 1 {
			topic = args[0]
		}
		cmdutil.RunExplain(cmd.OutOrStdout(), topic)
		return nil
	},
}

func init() {
	syntaxCmd.Flags().StringVarP(&syntaxSearch, "search", "s", "", "search patterns by keyword")
	_ = syntaxCmd.RegisterFlagCompletionFunc("search", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return syntax.Completions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(syntaxCmd)
	rootCmd.AddCommand(explainCmd)
}
