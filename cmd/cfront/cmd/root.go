package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/cmdutil"
)

var (
	cfgFile     string
	profileName string
	profileFile string
	noColor     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "cfront",
	Short: "Lexer and parser for a small C-like language",
	Long: `cfront checks programs written in a small C-like language: assignments,
+ and - expressions, comparisons, if/else, while, and typed functions.

Profiles select a feature level, from a single if statement up to the
full grammar. Configuration is read from .cfront/config.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			cli.ColorEnabled = false
		}
	},
}

// exitError carries a command's exit code back to Execute.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitWith(code int) error {
	if code == cmdutil.ExitOK {
		return nil
	}
	return &exitError{code: code}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
		return cmdutil.ExitUsage
	}
	return cmdutil.ExitOK
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .cfront/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "language profile (see 'cfront profiles')")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile-file", "", "load the profile from a .toml or .yaml file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

// newEnv resolves configuration from the global flags.
func newEnv(cmd *cobra.Command) (*cmdutil.Env, error) {
	return cmdutil.Setup(cmdutil.Options{
		ConfigPath:  cfgFile,
		Profile:     profileName,
		ProfileFile: profileFile,
		Verbose:     verbose,
		NoColor:     noColor,
		LogOutput:   cmd.ErrOrStderr(),
	})
}

// runOnSources reads each argument ("-" is stdin) and runs fn on it. The
// result is the highest exit code seen.
func runOnSources(cmd *cobra.Command, args []string, fn func(env *cmdutil.Env, name, source string) int) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	worst := cmdutil.ExitOK
	for _, path := range args {
		name, source, err := cmdutil.ReadSource(path, cmd.InOrStdin())
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), cli.Error(err.Error()))
			worst = max(worst, cmdutil.ExitUsage)
			continue
		}
		worst = max(worst, fn(env, name, source))
	}
	return exitWith(worst)
}
