package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barun-bash/cfront/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cfront v%s\n", version.Info())
		if verbose {
			for _, d := range version.Details() {
				fmt.Fprintf(out, "  %-8s %s\n", d[0]+":", d[1])
			}
		}
	},
}

func init() {
	rootCmd.Version = version.Info()
	rootCmd.AddCommand(versionCmd)
}
