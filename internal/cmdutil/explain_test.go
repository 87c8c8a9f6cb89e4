package cmdutil

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/syntax"
)

func TestRunExplainTopicList(t *testing.T) {
	cli.ColorEnabled = false
	var out bytes.Buffer
	RunExplain(&out, "")
	if !strings.Contains(out.String(), "Available Topics") {
		t.Error("expected topic list heading")
	}
	for _, cat := range syntax.AllCategories() {
		if !strings.Contains(out.String(), string(cat)) {
			t.Errorf("topic list missing %q", cat)
		}
	}
}

func TestRunExplainAlias(t *testing.T) {
	cli.ColorEnabled = false
	var out bytes.Buffer
	RunExplain(&out, "Loop")
	got := out.String()
	if !strings.Contains(got, "while (<condition>) { <statements> }") {
		t.Errorf("loop topic should show the while statement:\n%s", got)
	}
	if strings.Contains(got, "return <expression>;") {
		t.Error("loop topic should be filtered")
	}
	if !strings.Contains(got, "Related: cfront explain") {
		t.Error("expected related topics footer")
	}
}

func TestRunExplainFallsBackToSearch(t *testing.T) {
	cli.ColorEnabled = false
	var out bytes.Buffer
	RunExplain(&out, "iterate")
	if !strings.Contains(out.String(), "showing search results") {
		t.Errorf("expected search fallback:\n%s", out.String())
	}
}

func TestRunExplainUnknown(t *testing.T) {
	var out bytes.Buffer
	RunExplain(&out, "qqqqqqqqqqqq")
	if !strings.Contains(out.String(), "Unknown topic") {
		t.Errorf("got:\n%s", out.String())
	}
}

func TestExplainTopicNames(t *testing.T) {
	names := ExplainTopicNames()
	if !sort.StringsAreSorted(names) {
		t.Error("topic names should be sorted")
	}
	for _, want := range []string{"while", "conditions", "profiles", "errors"} {
		i := sort.SearchStrings(names, want)
		if i == len(names) || names[i] != want {
			t.Errorf("missing topic %q", want)
		}
	}
}

func TestRunSyntaxSection(t *testing.T) {
	cli.ColorEnabled = false
	var out bytes.Buffer
	RunSyntax(&out, "conditions", "", false)
	got := out.String()
	if !strings.Contains(got, "── Conditions") || !strings.Contains(got, "<expression> == <expression>") {
		t.Errorf("got:\n%s", got)
	}

	out.Reset()
	RunSyntax(&out, "profile", "", false)
	if !strings.Contains(out.String(), "profile: ifelse-narrow") {
		t.Errorf("profile section should name each example's profile:\n%s", out.String())
	}
}

func TestRunSyntaxUnknownSection(t *testing.T) {
	var out bytes.Buffer
	RunSyntax(&out, "widgets", "", false)
	if !strings.Contains(out.String(), "Unknown section: widgets") {
		t.Errorf("got:\n%s", out.String())
	}
}

func TestRunSyntaxSearch(t *testing.T) {
	cli.ColorEnabled = false
	var out bytes.Buffer
	RunSyntax(&out, "", "loop", false)
	if !strings.Contains(out.String(), "Found") || !strings.Contains(out.String(), "Tip: Run 'cfront explain") {
		t.Errorf("got:\n%s", out.String())
	}

	out.Reset()
	RunSyntax(&out, "", "qqqqqqqqqqqq", false)
	if !strings.Contains(out.String(), "No patterns matching") {
		t.Errorf("got:\n%s", out.String())
	}
}

func TestRunSyntaxFullWithoutPager(t *testing.T) {
	cli.ColorEnabled = false
	var out bytes.Buffer
	RunSyntax(&out, "", "", false)
	for _, cat := range syntax.AllCategories() {
		if !strings.Contains(out.String(), syntax.CategoryLabel(cat)) {
			t.Errorf("full reference missing %q", syntax.CategoryLabel(cat))
		}
	}
}
