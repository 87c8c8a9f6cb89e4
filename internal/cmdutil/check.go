package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/parser"
)

// checkReport is the machine-readable result of RunCheck.
type checkReport struct {
	Run         string             `json:"run"` // matches the run attribute in logs
	File        string             `json:"file"`
	Profile     string             `json:"profile"`
	Valid       bool               `json:"valid"`
	Functions   int                `json:"functions"`
	Statements  int                `json:"statements"`
	Diagnostics []diagnosticRecord `json:"diagnostics"`
	Dropped     int                `json:"dropped,omitempty"`
}

type diagnosticRecord struct {
	Code       string   `json:"code"`
	Severity   string   `json:"severity"`
	Message    string   `json:"message"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	Expected   []string `json:"expected,omitempty"`
	Found      string   `json:"found,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// RunCheck parses source and reports whether it is valid under the active
// profile. With format "json" the result is written to out as a single
// JSON document; otherwise diagnostics go to errOut with source snippets.
func RunCheck(out, errOut io.Writer, env *Env, file, source, format string) int {
	if format != "" && format != "text" && format != "json" {
		fmt.Fprintln(errOut, cli.Error(fmt.Sprintf("unknown format %q (want text or json)", format)))
		return ExitUsage
	}

	ds := env.newDiagnostics(file)
	prog, _ := parser.ParseWith(source, env.parseOptions(ds))

	if format == "json" {
		report := checkReport{
			Run:         env.RunID,
			File:        file,
			Profile:     env.Profile.Name,
			Valid:       prog != nil,
			Diagnostics: []diagnosticRecord{},
			Dropped:     ds.Dropped(),
		}
		if prog != nil {
			report.Functions = len(prog.Functions())
			report.Statements = len(prog.Items) - report.Functions
		}
		for _, d := range ds.All() {
			report.Diagnostics = append(report.Diagnostics, diagnosticRecord{
				Code:       d.Code,
				Severity:   d.Severity.String(),
				Message:    d.Message,
				Line:       d.Line,
				Column:     d.Column,
				Expected:   d.Expected,
				Found:      d.Found,
				Suggestion: d.Suggestion,
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintln(errOut, cli.Error(err.Error()))
			return ExitUsage
		}
		if prog == nil {
			return ExitDiagnostics
		}
		return ExitOK
	}

	if prog == nil {
		printDiagnostics(errOut, source, ds)
		return ExitDiagnostics
	}
	fmt.Fprintln(out, cli.Success(CheckSummary(prog, file, env.Profile.Name)))
	return ExitOK
}
