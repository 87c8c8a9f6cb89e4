package cmdutil

import (
	"fmt"
	"io"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/parser"
)

// ASTFormats lists the output formats accepted by RunAST.
var ASTFormats = []string{"json", "yaml", "source"}

// RunAST parses source and writes the syntax tree in the given format:
// "json", "yaml", or "source" for the canonical pretty-printed program.
func RunAST(out, errOut io.Writer, env *Env, file, source, format string) int {
	if format == "" {
		format = "json"
	}
	if !validFormat(format) {
		fmt.Fprintln(errOut, cli.Error(fmt.Sprintf("unknown format %q (want json, yaml or source)", format)))
		return ExitUsage
	}

	ds := env.newDiagnostics(file)
	prog, _ := parser.ParseWith(source, env.parseOptions(ds))
	if prog == nil {
		printDiagnostics(errOut, source, ds)
		return ExitDiagnostics
	}

	var rendered string
	switch format {
	case "json":
		data, err := parser.ToJSON(prog)
		if err != nil {
			fmt.Fprintln(errOut, cli.Error(err.Error()))
			return ExitUsage
		}
		rendered = string(data) + "\n"
	case "yaml":
		data, err := parser.ToYAML(prog)
		if err != nil {
			fmt.Fprintln(errOut, cli.Error(err.Error()))
			return ExitUsage
		}
		rendered = data
	case "source":
		rendered = parser.Print(prog)
	}
	fmt.Fprint(out, rendered)
	return ExitOK
}

func validFormat(format string) bool {
	for _, f := range ASTFormats {
		if f == format {
			return true
		}
	}
	return false
}
