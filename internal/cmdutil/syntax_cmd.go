package cmdutil

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/syntax"
)

// RunSyntax displays the syntax reference.
// If search is non-empty, searches patterns. If section is set, shows one
// category or topic. Otherwise shows the full reference, through a pager
// when usePager is true and one is available.
func RunSyntax(out io.Writer, section, search string, usePager bool) {
	if search != "" {
		runSyntaxSearch(out, search)
		return
	}

	if section != "" {
		runSyntaxSection(out, section)
		return
	}

	content := FullReference()
	if usePager {
		if pagerCmd := findPager(); pagerCmd != "" {
			if err := runPager(pagerCmd, content); err == nil {
				return
			}
		}
	}
	fmt.Fprint(out, content)
}

func runSyntaxSearch(out io.Writer, query string) {
	results := syntax.Search(query)
	if len(results) == 0 {
		fmt.Fprintf(out, "No patterns matching %q found.\n", query)
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s\n\n",
		cli.Heading(fmt.Sprintf("Found %d pattern%s matching %q:", len(results), Plural(len(results)), query)))

	printSearchResults(out, results, 15)

	cat := results[0].Category
	fmt.Fprintf(out, "%s\n", cli.Muted(fmt.Sprintf("Tip: Run 'cfront explain %s' for the full %s reference.", cat, syntax.CategoryLabel(cat))))
	fmt.Fprintln(out)
}

func runSyntaxSection(out io.Writer, section string) {
	section = strings.ToLower(section)

	for _, cat := range syntax.AllCategories() {
		if string(cat) == section {
			fmt.Fprintln(out)
			printCategorySection(out, cat, syntax.ByCategory(cat))
			return
		}
	}

	if match, ok := topicAliases[section]; ok {
		fmt.Fprintln(out)
		for _, cat := range match.cats {
			patterns := syntax.ByCategory(cat)
			if match.filter != "" {
				patterns = filterPatterns(patterns, match.filter)
			}
			if len(patterns) == 0 {
				continue
			}
			printCategorySection(out, cat, patterns)
		}
		return
	}

	fmt.Fprintf(out, "Unknown section: %s\n", section)
	fmt.Fprintln(out, "Available sections:")
	for _, cat := range syntax.AllCategories() {
		fmt.Fprintf(out, "  %s\n", cat)
	}
}

// FullReference renders every category of the syntax reference.
func FullReference() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(cli.Heading("cfront: Syntax Reference"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("═", 50))
	sb.WriteString("\n\n")

	for _, cat := range syntax.AllCategories() {
		patterns := syntax.ByCategory(cat)
		if len(patterns) == 0 {
			continue
		}

		header := fmt.Sprintf("── %s ", syntax.CategoryLabel(cat))
		pad := max(50-len([]rune(header)), 0)
		sb.WriteString(cli.Heading(header) + strings.Repeat("─", pad) + "\n\n")

		for _, p := range patterns {
			template := highlightPlaceholders(p.Template)
			sb.WriteString(fmt.Sprintf("  %-42s %s\n", template, cli.Muted(p.Description)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func findPager() string {
	if pager := os.Getenv("PAGER"); pager != "" {
		return pager
	}
	if _, err := exec.LookPath("less"); err == nil {
		return "less -R"
	}
	if _, err := exec.LookPath("more"); err == nil {
		return "more"
	}
	return ""
}

func runPager(pagerCmd, content string) error {
	parts := strings.Fields(pagerCmd)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
