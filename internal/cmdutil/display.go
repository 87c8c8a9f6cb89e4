package cmdutil

import (
	"fmt"
	"strings"

	"github.com/barun-bash/cfront/internal/parser"
)

// CheckSummary returns a formatted summary of what was found in a parsed program.
func CheckSummary(prog *parser.Program, file, profileName string) string {
	functions := len(prog.Functions())
	statements := len(prog.Items) - functions

	var parts []string
	if functions > 0 {
		parts = append(parts, fmt.Sprintf("%d function%s", functions, Plural(functions)))
	}
	if statements > 0 {
		parts = append(parts, fmt.Sprintf("%d statement%s", statements, Plural(statements)))
	}

	msg := fmt.Sprintf("%s is valid", file)
	if len(parts) > 0 {
		msg += ": " + strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s (profile %s)", msg, profileName)
}

// Plural returns "s" for n != 1, empty string for n == 1.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
