package cmdutil

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/syntax"
)

// topicMatch maps a user-friendly topic name to categories and an optional filter.
type topicMatch struct {
	cats   []syntax.Category
	filter string
}

var topicAliases = map[string]topicMatch{
	"program":     {cats: []syntax.Category{syntax.CatProgram}},
	"items":       {cats: []syntax.Category{syntax.CatProgram}},
	"block":       {cats: []syntax.Category{syntax.CatProgram}},
	"blocks":      {cats: []syntax.Category{syntax.CatProgram}},
	"statements":  {cats: []syntax.Category{syntax.CatStatements}},
	"statement":   {cats: []syntax.Category{syntax.CatStatements}},
	"functions":   {cats: []syntax.Category{syntax.CatFunctions}},
	"function":    {cats: []syntax.Category{syntax.CatFunctions}},
	"params":      {cats: []syntax.Category{syntax.CatFunctions}, filter: "param"},
	"parameters":  {cats: []syntax.Category{syntax.CatFunctions}, filter: "param"},
	"expressions": {cats: []syntax.Category{syntax.CatExpressions}},
	"expression":  {cats: []syntax.Category{syntax.CatExpressions}},
	"arithmetic":  {cats: []syntax.Category{syntax.CatExpressions}, filter: "arithmetic"},
	"conditions":  {cats: []syntax.Category{syntax.CatConditions}},
	"condition":   {cats: []syntax.Category{syntax.CatConditions}},
	"comparison":  {cats: []syntax.Category{syntax.CatConditions}},
	"relational":  {cats: []syntax.Category{syntax.CatConditions}},
	"lexical":     {cats: []syntax.Category{syntax.CatLexical}},
	"tokens":      {cats: []syntax.Category{syntax.CatLexical}},
	"comments":    {cats: []syntax.Category{syntax.CatLexical}, filter: "comment"},
	"keywords":    {cats: []syntax.Category{syntax.CatLexical}, filter: "keyword"},
	"profiles":    {cats: []syntax.Category{syntax.CatProfiles}},
	"profile":     {cats: []syntax.Category{syntax.CatProfiles}},
	"errors":      {cats: []syntax.Category{syntax.CatErrors}},
	"error":       {cats: []syntax.Category{syntax.CatErrors}},
	"diagnostics": {cats: []syntax.Category{syntax.CatErrors}},

	// Single constructs
	"assign":     {cats: []syntax.Category{syntax.CatStatements}, filter: "assign"},
	"assignment": {cats: []syntax.Category{syntax.CatStatements}, filter: "assign"},
	"if":         {cats: []syntax.Category{syntax.CatStatements, syntax.CatProfiles}, filter: "if"},
	"else":       {cats: []syntax.Category{syntax.CatStatements, syntax.CatProfiles}, filter: "else"},
	"while":      {cats: []syntax.Category{syntax.CatStatements, syntax.CatProfiles}, filter: "while"},
	"loop":       {cats: []syntax.Category{syntax.CatStatements}, filter: "loop"},
	"loops":      {cats: []syntax.Category{syntax.CatStatements}, filter: "loop"},
	"return":     {cats: []syntax.Category{syntax.CatStatements, syntax.CatFunctions}, filter: "return"},
}

// ExplainTopicNames returns all valid topic names, sorted, for completion.
func ExplainTopicNames() []string {
	names := make([]string, 0, len(topicAliases))
	for name := range topicAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var placeholderRe = regexp.MustCompile(`<([^>]+)>`)

// RunExplain displays an explanation for the given topic.
// If topic is empty, lists all available topics.
func RunExplain(out io.Writer, topic string) {
	if topic == "" {
		printTopicList(out)
		return
	}

	topic = strings.ToLower(topic)

	match, ok := topicAliases[topic]
	if !ok {
		results := syntax.Search(topic)
		if len(results) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "No exact topic %q, showing search results:\n\n", topic)
			printSearchResults(out, results, 10)
			return
		}
		fmt.Fprintf(out, "Unknown topic: %s\n", topic)
		fmt.Fprintln(out, "Run 'cfront explain' to see available topics.")
		return
	}

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

	related := relatedTopics(match.cats)
	if len(related) > 0 {
		parts := make([]string, len(related))
		for i, r := range related {
			parts[i] = fmt.Sprintf("cfront explain %s", r)
		}
		fmt.Fprintf(out, "%s\n\n", cli.Muted("Related: "+strings.Join(parts, " │ ")))
	}
}

func printTopicList(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.Heading("Available Topics"))
	fmt.Fprintln(out, strings.Repeat("─", 50))
	fmt.Fprintln(out)

	for _, cat := range syntax.AllCategories() {
		count := len(syntax.ByCategory(cat))
		fmt.Fprintf(out, "  %-20s %s\n",
			cli.Accent(string(cat)),
			cli.Muted(fmt.Sprintf("(%d patterns) %s", count, syntax.CategoryLabel(cat))))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.Muted("Usage: cfront explain <topic>"))
	fmt.Fprintln(out, cli.Muted("  e.g.: cfront explain while, cfront explain conditions, cfront explain errors"))
	fmt.Fprintln(out)
}

func printCategorySection(out io.Writer, cat syntax.Category, patterns []syntax.Pattern) {
	header := fmt.Sprintf("── %s ", syntax.CategoryLabel(cat))
	pad := max(50-len([]rune(header)), 0)
	fmt.Fprintf(out, "%s%s\n\n", cli.Heading(header), strings.Repeat("─", pad))

	for _, p := range patterns {
		template := highlightPlaceholders(p.Template)
		fmt.Fprintf(out, "  %-42s %s\n", template, cli.Muted(p.Description))
		if p.Example != "" {
			example := strings.ReplaceAll(p.Example, "\n", "\n          ")
			fmt.Fprintf(out, "    %s\n", cli.Muted("e.g.: "+example))
		}
		if p.Profile != "" {
			fmt.Fprintf(out, "    %s\n", cli.Muted("profile: "+p.Profile))
		}
	}
	fmt.Fprintln(out)
}

func printSearchResults(out io.Writer, patterns []syntax.Pattern, limit int) {
	if len(patterns) > limit {
		patterns = patterns[:limit]
	}
	for _, p := range patterns {
		template := highlightPlaceholders(p.Template)
		fmt.Fprintf(out, "  %-42s %s\n", template, cli.Muted(fmt.Sprintf("(%s)", p.Category)))
	}
	fmt.Fprintln(out)
}

func highlightPlaceholders(template string) string {
	if !cli.ColorEnabled {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		return cli.Colorize(cli.RoleInfo, match)
	})
}

func filterPatterns(patterns []syntax.Pattern, term string) []syntax.Pattern {
	term = strings.ToLower(term)
	var result []syntax.Pattern
	for _, p := range patterns {
		if strings.Contains(strings.ToLower(p.Template), term) {
			result = append(result, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				result = append(result, p)
				break
			}
		}
	}
	return result
}

func relatedTopics(current []syntax.Category) []string {
	relatedMap := map[syntax.Category][]string{
		syntax.CatProgram:     {"statements", "functions"},
		syntax.CatStatements:  {"conditions", "expressions", "profiles"},
		syntax.CatFunctions:   {"return", "statements"},
		syntax.CatExpressions: {"conditions", "statements"},
		syntax.CatConditions:  {"expressions", "if", "while"},
		syntax.CatLexical:     {"errors", "keywords"},
		syntax.CatProfiles:    {"errors", "statements"},
		syntax.CatErrors:      {"lexical", "profiles"},
	}

	seen := make(map[string]bool)
	var result []string
	for _, cat := range current {
		for _, r := range relatedMap[cat] {
			if !seen[r] {
				seen[r] = true
				result = append(result, r)
			}
		}
	}

	if len(result) > 3 {
		result = result[:3]
	}
	return result
}
