package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/lexer"
)

type tokenRecord struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal,omitempty"`
	Value   *int64 `json:"value,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// RunTokens lexes source with the active profile's keywords and lists the
// token stream, ending with EOF. Lexical diagnostics go to errOut; the
// tokens that were recognized are still listed.
func RunTokens(out, errOut io.Writer, env *Env, file, source, format string) int {
	if format != "" && format != "text" && format != "json" {
		fmt.Fprintln(errOut, cli.Error(fmt.Sprintf("unknown format %q (want text or json)", format)))
		return ExitUsage
	}

	ds := env.newDiagnostics(file)
	tokens := lexer.New(source, env.Profile.Keywords, ds).
		WithLogger(env.Logger.With(slog.String("component", "lexer"))).
		Tokenize()

	if format == "json" {
		records := make([]tokenRecord, 0, len(tokens))
		for _, tok := range tokens {
			rec := tokenRecord{Kind: tok.Type.Name(), Literal: tok.Literal, Line: tok.Line, Column: tok.Column}
			if tok.Type == lexer.TOKEN_NUMBER {
				v := tok.Value
				rec.Value = &v
			}
			records = append(records, rec)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			fmt.Fprintln(errOut, cli.Error(err.Error()))
			return ExitUsage
		}
	} else {
		for _, tok := range tokens {
			pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
			fmt.Fprintf(out, "%-8s %-11s %s\n", pos, tok.Type.Name(), tok.Literal)
		}
	}

	if ds.HasErrors() {
		printDiagnostics(errOut, source, ds)
		return ExitDiagnostics
	}
	return ExitOK
}
