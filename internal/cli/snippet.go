package cli

import (
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/barun-bash/cfront/internal/errors"
)

// RenderSnippet formats a diagnostic followed by the source line it points
// at and a caret under the offending column:
//
//	✗ main.cf:3:12: syntax error: expected expression, found ')' [S001]
//	   3 | while (x < ) {
//	     |            ^ expected identifier or number
//
// The snippet is omitted when the position lies outside the source.
func RenderSnippet(source string, d *cerr.Diagnostic) string {
	var b strings.Builder
	b.WriteString(Error(d.Format()))
	b.WriteString("\n")

	num := strconv.Itoa(d.Line)
	width := max(len(num), 3)
	if line, ok := sourceLine(source, d.Line); ok {
		gutter := strings.Repeat(" ", width+1) + "|"
		fmt.Fprintf(&b, "%s %s\n", Muted(fmt.Sprintf(" %*s |", width, num)), line)

		caret := "^"
		if len(d.Expected) > 0 {
			caret += " expected " + joinAlternatives(d.Expected)
		}
		fmt.Fprintf(&b, "%s %s%s\n", Muted(gutter), caretPadding(line, d.Column), Colorize(RoleError, caret))
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&b, "%s %s\n", Muted(strings.Repeat(" ", width+1)+"="), Accent("suggestion: "+d.Suggestion))
	}
	return b.String()
}

// sourceLine returns the 1-based line n of source without its line ending.
func sourceLine(source string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}

// caretPadding returns whitespace reaching column col of line. Tabs are kept
// so the caret lines up however the terminal expands them.
func caretPadding(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}

// joinAlternatives renders ["a", "b", "c"] as "a, b or c".
func joinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
