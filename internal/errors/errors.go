package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Severity identifies which stage of the front end produced a diagnostic.
type Severity int

const (
	SeverityLexical Severity = iota
	SeveritySyntax
)

// String returns the lowercase stage name.
func (s Severity) String() string {
	switch s {
	case SeverityLexical:
		return "lexical"
	case SeveritySyntax:
		return "syntax"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic codes.
const (
	CodeIllegalChar     = "L001" // character matches no lexical rule
	CodeNumberRange     = "L002" // integer literal does not fit in int64
	CodeUnexpectedToken = "S001" // token not in the expected set
	CodeTrailingInput   = "S002" // tokens left after the start symbol
	CodeDisabled        = "S003" // construct not enabled in the active profile
)

// DefaultLimit caps the number of diagnostics a single run stores.
const DefaultLimit = 100

// Diagnostic is a single lexical or syntax error with its source position.
type Diagnostic struct {
	Severity   Severity
	Code       string   // "L001" style code
	Message    string   // human-readable description
	File       string   // source file path (empty if unknown)
	Line       int      // 1-based
	Column     int      // 1-based
	Expected   []string // acceptable token kinds (syntax errors only)
	Found      string   // offending token as displayed in Message
	Suggestion string   // e.g. "did you mean 'while'?" (optional)
}

// Format returns a single-line representation of this diagnostic
// suitable for terminal output (without ANSI; the caller wraps with cli colors).
func (d *Diagnostic) Format() string {
	var b strings.Builder

	if d.File != "" {
		b.WriteString(d.File)
		b.WriteString(":")
	}
	fmt.Fprintf(&b, "%d:%d: %s error: %s", d.Line, d.Column, d.Severity, d.Message)

	if d.Code != "" {
		b.WriteString(" [")
		b.WriteString(d.Code)
		b.WriteString("]")
	}

	return b.String()
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format()
}

// Diagnostics collects the diagnostics of one tokenize or parse run.
// The lexer and parser of a run share a single collector.
type Diagnostics struct {
	items   []*Diagnostic
	file    string // default file context
	limit   int
	dropped int
}

// New creates a Diagnostics collection scoped to a file.
func New(file string) *Diagnostics {
	return &Diagnostics{file: file, limit: DefaultLimit}
}

// SetLimit changes the maximum number of stored diagnostics.
// A non-positive limit restores DefaultLimit.
func (ds *Diagnostics) SetLimit(n int) {
	if n <= 0 {
		n = DefaultLimit
	}
	ds.limit = n
}

// Add appends a diagnostic to the collection. It returns false when the
// collection is already full; the diagnostic is then only counted.
func (ds *Diagnostics) Add(d *Diagnostic) bool {
	if ds.Full() {
		ds.dropped++
		return false
	}
	if d.File == "" {
		d.File = ds.file
	}
	ds.items = append(ds.items, d)
	return true
}

// AddLexical is a shorthand for adding a SeverityLexical diagnostic.
func (ds *Diagnostics) AddLexical(code string, line, column int, message string) bool {
	return ds.Add(&Diagnostic{
		Severity: SeverityLexical,
		Code:     code,
		Message:  message,
		Line:     line,
		Column:   column,
	})
}

// AddSyntax is a shorthand for adding a SeveritySyntax diagnostic.
func (ds *Diagnostics) AddSyntax(code string, line, column int, message string) bool {
	return ds.Add(&Diagnostic{
		Severity: SeveritySyntax,
		Code:     code,
		Message:  message,
		Line:     line,
		Column:   column,
	})
}

// Len returns the number of stored diagnostics.
func (ds *Diagnostics) Len() int {
	return len(ds.items)
}

// HasErrors returns true if anything has been reported, stored or dropped.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.items) > 0 || ds.dropped > 0
}

// Full returns true once the limit has been reached.
func (ds *Diagnostics) Full() bool {
	limit := ds.limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return len(ds.items) >= limit
}

// Dropped returns how many diagnostics were discarded by the limit.
func (ds *Diagnostics) Dropped() int {
	return ds.dropped
}

// All returns every stored diagnostic in source order. Diagnostics at the
// same position keep the order in which they were reported.
func (ds *Diagnostics) All() []*Diagnostic {
	out := make([]*Diagnostic, len(ds.items))
	copy(out, ds.items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// Lexical returns only the SeverityLexical entries, in source order.
func (ds *Diagnostics) Lexical() []*Diagnostic {
	return ds.filter(SeverityLexical)
}

// Syntax returns only the SeveritySyntax entries, in source order.
func (ds *Diagnostics) Syntax() []*Diagnostic {
	return ds.filter(SeveritySyntax)
}

func (ds *Diagnostics) filter(sev Severity) []*Diagnostic {
	var result []*Diagnostic
	for _, d := range ds.All() {
		if d.Severity == sev {
			result = append(result, d)
		}
	}
	return result
}

// Err returns nil when the collection is empty, otherwise an error
// joining every diagnostic.
func (ds *Diagnostics) Err() error {
	if !ds.HasErrors() {
		return nil
	}
	all := ds.All()
	errs := make([]error, 0, len(all))
	for _, d := range all {
		errs = append(errs, d)
	}
	if ds.dropped > 0 {
		errs = append(errs, fmt.Errorf("%d more diagnostic(s) suppressed", ds.dropped))
	}
	return stderrors.Join(errs...)
}

// Format returns a human-friendly multiline string of all diagnostics.
func (ds *Diagnostics) Format() string {
	var b strings.Builder
	for i, d := range ds.All() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "✗ %s", d.Format())
		if d.Suggestion != "" {
			fmt.Fprintf(&b, "\n  suggestion: %s", d.Suggestion)
		}
	}
	if ds.dropped > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "... %d more diagnostic(s) suppressed", ds.dropped)
	}
	return b.String()
}
