package cmdutil

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/profile"
)

// RunProfiles lists the built-in and project profiles, or shows one
// profile in detail when name is set. A non-empty export path writes the
// shown profile to a .toml or .yaml file that --profile-file accepts.
func RunProfiles(out, errOut io.Writer, env *Env, name, export string) int {
	if name == "" {
		if export != "" {
			fmt.Fprintln(errOut, cli.Error("--export needs a profile name"))
			return ExitUsage
		}
		listProfiles(out, env)
		return ExitOK
	}

	p, err := profile.Lookup(name, env.Config.Profiles)
	if err != nil {
		fmt.Fprintln(errOut, cli.Error(err.Error()))
		return ExitUsage
	}
	showProfile(out, p)

	if export != "" {
		if err := profile.WriteFile(export, p); err != nil {
			fmt.Fprintln(errOut, cli.Error(err.Error()))
			return ExitUsage
		}
		fmt.Fprintln(out, cli.Success(fmt.Sprintf("Wrote profile %s to %s", p.Name, export)))
	}
	return ExitOK
}

func listProfiles(out io.Writer, env *Env) {
	active := env.Profile.Name

	fmt.Fprintln(out, cli.Heading("Built-in profiles"))
	for _, n := range profile.BuiltinNames() {
		p, err := profile.Builtin(n)
		if err != nil {
			continue
		}
		printProfileLine(out, n, profile.Describe(n), p.Summary(), n == active)
	}

	custom := env.Config.ProfileNames()
	if len(custom) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.Heading("Project profiles"))
	for _, n := range custom {
		p, err := profile.Lookup(n, env.Config.Profiles)
		if err != nil {
			continue
		}
		printProfileLine(out, n, "", p.Summary(), n == active)
	}
}

func printProfileLine(out io.Writer, name, description, summary string, active bool) {
	marker := " "
	if active {
		marker = "*"
	}
	fmt.Fprintf(out, "%s %-16s %s\n", marker, cli.Accent(name), description)
	fmt.Fprintf(out, "  %-16s %s\n", "", cli.Muted(summary))
}

func showProfile(out io.Writer, p *profile.Profile) {
	spec := p.Spec()

	fmt.Fprintln(out, cli.Heading("Profile "+p.Name))
	if d := profile.Describe(p.Name); d != "" {
		fmt.Fprintf(out, "  %s\n", d)
	}

	mode := "program"
	if p.SingleItem {
		mode = "single item"
	}
	fmt.Fprintf(out, "  %-12s %s\n", "constructs:", strings.Join(spec.Constructs, ", "))
	fmt.Fprintf(out, "  %-12s %s\n", "expressions:", p.Expressions)
	fmt.Fprintf(out, "  %-12s %s\n", "mode:", mode)
	if p.Start != "" {
		fmt.Fprintf(out, "  %-12s %s\n", "start:", p.Start)
	}

	words := make([]string, 0, len(spec.Keywords))
	for w := range spec.Keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	fmt.Fprintf(out, "  %-12s\n", "keywords:")
	for _, w := range words {
		fmt.Fprintf(out, "    %-10s %s\n", w, cli.Muted(spec.Keywords[w]))
	}
}
