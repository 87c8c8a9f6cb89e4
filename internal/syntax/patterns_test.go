package syntax

import (
	"strings"
	"testing"

	"github.com/barun-bash/cfront/internal/parser"
	"github.com/barun-bash/cfront/internal/profile"
)

func TestAllCategoriesHavePatterns(t *testing.T) {
	for _, cat := range AllCategories() {
		patterns := ByCategory(cat)
		if len(patterns) < 3 {
			t.Errorf("category %q has only %d patterns (want >= 3)", cat, len(patterns))
		}
	}
}

func TestAllPatternsHaveRequiredFields(t *testing.T) {
	for i, p := range AllPatterns() {
		if p.Template == "" {
			t.Errorf("pattern %d has empty Template", i)
		}
		if p.Description == "" {
			t.Errorf("pattern %d (%q) has empty Description", i, p.Template)
		}
		if p.Category == "" {
			t.Errorf("pattern %d (%q) has empty Category", i, p.Template)
		}
		if len(p.Tags) == 0 {
			t.Errorf("pattern %d (%q) has no Tags", i, p.Template)
		}
		if p.Example == "" {
			t.Errorf("pattern %d (%q) has no Example", i, p.Template)
		}
	}
}

func TestNoDuplicateTemplates(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range AllPatterns() {
		if seen[p.Template] {
			t.Errorf("duplicate template: %q", p.Template)
		}
		seen[p.Template] = true
	}
}

func TestRelatedTemplatesExist(t *testing.T) {
	templates := make(map[string]bool)
	for _, p := range AllPatterns() {
		templates[p.Template] = true
	}
	for _, p := range AllPatterns() {
		for _, rel := range p.Related {
			if !templates[rel] {
				t.Errorf("%q relates to unknown template %q", p.Template, rel)
			}
		}
	}
}

// Every example is real code: valid ones parse cleanly under their profile,
// error examples produce the diagnostic they document.
func TestExamplesMatchTheParser(t *testing.T) {
	for _, p := range AllPatterns() {
		t.Run(p.Template, func(t *testing.T) {
			prof, err := profile.Lookup(p.Profile, nil)
			if err != nil {
				t.Fatal(err)
			}
			prog, diags := parser.ParseWith(p.Example, parser.Options{Profile: prof})

			if p.Code == "" {
				if len(diags) > 0 || prog == nil {
					t.Fatalf("example %q does not parse: %v", p.Example, diags)
				}
				return
			}
			if len(diags) == 0 {
				t.Fatalf("example %q should produce %s", p.Example, p.Code)
			}
			if diags[0].Code != p.Code {
				t.Errorf("first diagnostic is %s, want %s", diags[0].Code, p.Code)
			}
		})
	}
}

func TestEveryBuiltinProfileHasAnExample(t *testing.T) {
	covered := make(map[string]bool)
	for _, p := range ByCategory(CatProfiles) {
		covered[p.Profile] = true
	}
	for _, name := range profile.BuiltinNames() {
		if name == profile.DefaultName {
			continue
		}
		if !covered[name] {
			t.Errorf("built-in profile %q has no example", name)
		}
	}
}

func TestSearchLoop(t *testing.T) {
	results := Search("loop")
	if len(results) == 0 {
		t.Fatal("expected results for 'loop'")
	}
	if !strings.HasPrefix(results[0].Template, "while") {
		t.Errorf("expected while pattern first, got %q", results[0].Template)
	}
}

func TestSearchComparison(t *testing.T) {
	results := Search("comparison")
	if len(results) != len(ByCategory(CatConditions)) {
		t.Errorf("expected every condition pattern, got %d", len(results))
	}
	for _, p := range results {
		if p.Category != CatConditions {
			t.Errorf("unexpected category %q", p.Category)
		}
	}
}

func TestSearchFuzzy(t *testing.T) {
	results := Search("retrun")
	found := false
	for _, p := range results {
		if p.Template == "return <expression>;" {
			found = true
		}
	}
	if !found {
		t.Error("expected fuzzy match on 'return' tag")
	}
}

func TestSearchEmpty(t *testing.T) {
	results := Search("")
	if len(results) != len(AllPatterns()) {
		t.Errorf("empty search should return all patterns, got %d want %d", len(results), len(AllPatterns()))
	}
}

func TestByCategoryFunctions(t *testing.T) {
	patterns := ByCategory(CatFunctions)
	if len(patterns) == 0 {
		t.Fatal("expected function patterns")
	}
	for _, p := range patterns {
		if p.Category != CatFunctions {
			t.Errorf("expected category functions, got %q", p.Category)
		}
	}
}

func TestSearchOperatorRanksConditionsFirst(t *testing.T) {
	tests := []struct {
		query    string
		template string
	}{
		{"<=", "<expression> <= <expression>"},
		{">", "<expression> > <expression>"},
		{"!=", "<expression> != <expression>"},
		{"=", "<name> = <expression>;"},
		{"while", "while (<condition>) { <statements> }"},
		{"else", "if (<condition>) { <statements> } else { <statements> }"},
		{"S002", "S002 trailing input"},
		{"l001", "L001 illegal character"},
		{"ifelse-narrow", "profile ifelse-narrow"},
		{"if", "if (<condition>) { <statements> }"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := Search(tt.query)
			if len(results) == 0 {
				t.Fatal("no results")
			}
			if results[0].Template != tt.template {
				t.Errorf("first result = %q, want %q", results[0].Template, tt.template)
			}
		})
	}
}

func TestSearchOperatorMatchesExamples(t *testing.T) {
	// The whitespace pattern mentions no operator but its example uses <=.
	found := false
	for _, p := range Search("<=") {
		if p.Template == "<whitespace>" {
			found = true
		}
	}
	if !found {
		t.Error("expected the whitespace example to match '<='")
	}
}

func TestSearchMisspelledKeyword(t *testing.T) {
	results := Search("whlie")
	if len(results) == 0 || results[0].Template != "while (<condition>) { <statements> }" {
		t.Errorf("Search(whlie) = %v", results)
	}
}

func TestCompletions(t *testing.T) {
	got := Completions("wh")
	if len(got) < 2 || got[0] != "while" {
		t.Fatalf("Completions(wh) = %v", got)
	}
	if got[1] != "while (<condition>) { <statements> }" {
		t.Errorf("expected the while template after the keyword, got %q", got[1])
	}

	got = Completions("S0")
	want := []string{"S001", "S002", "S003"}
	if len(got) < 3 || strings.Join(got[:3], ",") != strings.Join(want, ",") {
		t.Errorf("Completions(S0) = %v, want %v", got, want)
	}

	if got := Completions("if"); got[0] != "if" || len(got) < 3 {
		t.Errorf("Completions(if) = %v", got)
	}
}

func TestCompletionsEmpty(t *testing.T) {
	if got := Completions(""); got != nil {
		t.Errorf("empty prefix should return nil, got %v", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	if label := CategoryLabel(CatErrors); label != "Diagnostics" {
		t.Errorf("expected 'Diagnostics', got %q", label)
	}
	if label := CategoryLabel(Category("misc")); label != "misc" {
		t.Errorf("unknown category label = %q", label)
	}
}
