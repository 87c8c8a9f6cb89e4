package profile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/barun-bash/cfront/internal/lexer"
)

func TestBuiltinsValidate(t *testing.T) {
	for _, name := range BuiltinNames() {
		p, err := Builtin(name)
		if err != nil {
			t.Errorf("Builtin(%q): %v", name, err)
			continue
		}
		if p.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, p.Name)
		}
		if Describe(name) == "" {
			t.Errorf("built-in %q has no description", name)
		}
	}
}

func TestDefaultIsFull(t *testing.T) {
	p := Default()
	if p.Name != "full" {
		t.Fatalf("default profile = %q", p.Name)
	}
	for _, c := range AllConstructs() {
		if !p.Enabled(c) {
			t.Errorf("full profile should enable %q", c)
		}
	}
	if p.SingleItem {
		t.Error("full profile should parse whole programs")
	}
	if p.Expressions != ExprFlat {
		t.Errorf("full profile expressions = %q", p.Expressions)
	}
	if !reflect.DeepEqual(p.Keywords, lexer.DefaultKeywords()) {
		t.Errorf("full keywords = %v", p.Keywords)
	}
}

func TestBuiltinFeatureLevels(t *testing.T) {
	tests := []struct {
		name     string
		enabled  []Construct
		disabled []Construct
	}{
		{"if", []Construct{ConstructAssign, ConstructIf}, []Construct{ConstructElse, ConstructWhile, ConstructFunction}},
		{"ifelse", []Construct{ConstructIf, ConstructElse}, []Construct{ConstructWhile, ConstructReturn}},
		{"while", []Construct{ConstructIf, ConstructWhile}, []Construct{ConstructElse, ConstructFunction}},
		{"function", []Construct{ConstructFunction, ConstructReturn}, []Construct{ConstructElse, ConstructWhile}},
	}
	for _, tt := range tests {
		p, err := Builtin(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range tt.enabled {
			if !p.Enabled(c) {
				t.Errorf("%s: expected %q enabled", tt.name, c)
			}
		}
		for _, c := range tt.disabled {
			if p.Enabled(c) {
				t.Errorf("%s: expected %q disabled", tt.name, c)
			}
		}
	}
}

func TestBuiltinReturnsFreshCopy(t *testing.T) {
	a, _ := Builtin("full")
	delete(a.Keywords, "while")
	b, _ := Builtin("full")
	if b.Keywords.Lookup("while") != lexer.TOKEN_WHILE {
		t.Error("mutating one profile leaked into another")
	}
}

func TestUnknownBuiltin(t *testing.T) {
	_, err := Builtin("cobol")
	if err == nil || !strings.Contains(err.Error(), "unknown profile") {
		t.Fatalf("expected unknown profile error, got %v", err)
	}
}

func TestBuildWithBase(t *testing.T) {
	p, err := Build(Spec{
		Name:     "spanish",
		Base:     "full",
		Keywords: map[string]string{"si": "if", "mientras": "while"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Keywords.Lookup("si") != lexer.TOKEN_IF {
		t.Error("expected 'si' to map to if")
	}
	if p.Keywords.Lookup("if") != lexer.TOKEN_IF {
		t.Error("expected base keywords to be inherited")
	}
	if !p.Enabled(ConstructFunction) {
		t.Error("expected base constructs to be inherited")
	}
}

func TestBuildOverridesConstructs(t *testing.T) {
	p, err := Build(Spec{Base: "full", Constructs: []string{"assign", "while"}})
	if err != nil {
		t.Fatal(err)
	}
	if p.Enabled(ConstructIf) {
		t.Error("explicit constructs should replace the base set")
	}
	if got := p.Constructs(); !reflect.DeepEqual(got, []Construct{ConstructAssign, ConstructWhile}) {
		t.Errorf("Constructs() = %v", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{"unknown kind", Spec{Keywords: map[string]string{"loop": "for"}, Constructs: []string{"assign"}}, "unknown kind"},
		{"bad word", Spec{Keywords: map[string]string{"9lives": "if"}, Constructs: []string{"assign"}}, "not a valid identifier"},
		{"unknown construct", Spec{Constructs: []string{"switch"}}, "unknown construct"},
		{"no constructs", Spec{}, "no constructs"},
		{"missing keyword", Spec{Constructs: []string{"assign", "while"}}, "no keyword maps to while"},
		{"else without if", Spec{Keywords: map[string]string{"else": "else"}, Constructs: []string{"assign", "else"}}, "requires \"if\""},
		{"bad mode", Spec{Constructs: []string{"assign"}, Expressions: "recursive"}, "unknown expression mode"},
		{"bad base", Spec{Base: "nope"}, "unknown profile"},
		{"unknown start", Spec{Constructs: []string{"assign"}, Start: "loop"}, "unknown start construct"},
		{"start not enabled", Spec{Constructs: []string{"assign"}, Start: "if"}, "is not enabled"},
		{"else start", Spec{Base: "ifelse", Start: "else"}, "cannot be the start construct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.spec)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLookupPrefersCustom(t *testing.T) {
	custom := map[string]Spec{
		"full": {Keywords: map[string]string{"if": "if"}, Constructs: []string{"assign", "if"}},
	}
	p, err := Lookup("full", custom)
	if err != nil {
		t.Fatal(err)
	}
	if p.Enabled(ConstructWhile) {
		t.Error("expected custom 'full' to shadow the built-in")
	}

	p, err = Lookup("", nil)
	if err != nil || p.Name != DefaultName {
		t.Fatalf("Lookup(\"\") = %v, %v", p, err)
	}
}

func TestSpecRoundTrip(t *testing.T) {
	orig, _ := Builtin("function")
	again, err := Build(orig.Spec())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(orig.Keywords, again.Keywords) ||
		!reflect.DeepEqual(orig.Constructs(), again.Constructs()) ||
		orig.SingleItem != again.SingleItem ||
		orig.Start != again.Start {
		t.Errorf("round trip mismatch: %+v vs %+v", orig.Spec(), again.Spec())
	}
}

func TestSummary(t *testing.T) {
	p, _ := Builtin("ifelse-narrow")
	got := p.Summary()
	if got != "assign, if, else; narrow expressions; single item" {
		t.Errorf("Summary() = %q", got)
	}
}

// ── Files ──

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.toml")
	data := `base = "while"
expressions = "narrow"

[keywords]
loop = "while"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "legacy" {
		t.Errorf("name = %q, want file base name", p.Name)
	}
	if p.Expressions != ExprNarrow {
		t.Errorf("expressions = %q", p.Expressions)
	}
	if p.Keywords.Lookup("loop") != lexer.TOKEN_WHILE {
		t.Error("expected 'loop' keyword")
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.yaml")
	data := `name: mini
keywords:
  if: if
constructs: [assign, if]
single_item: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "mini" || !p.SingleItem || p.Enabled(ConstructWhile) {
		t.Errorf("unexpected profile %+v", p.Spec())
	}
}

func TestLoadFileYAMLUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("constructs: [assign]\nkeywrds: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	json := filepath.Join(dir, "p.json")
	os.WriteFile(json, []byte("{}"), 0644)
	if _, err := LoadFile(json); err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Errorf("expected unsupported extension error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("constructs = [unterminated"), 0644)
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected TOML syntax error")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	orig, _ := Builtin("while")
	for _, ext := range []string{".toml", ".yaml"} {
		path := filepath.Join(t.TempDir(), "while"+ext)
		if err := WriteFile(path, orig); err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		if !reflect.DeepEqual(got.Keywords, orig.Keywords) || !reflect.DeepEqual(got.Constructs(), orig.Constructs()) {
			t.Errorf("%s: round trip mismatch %+v", ext, got.Spec())
		}
	}
}

func TestStartKind(t *testing.T) {
	tests := []struct {
		profile string
		kind    lexer.TokenType
		ok      bool
	}{
		{"if", lexer.TOKEN_IF, true},
		{"ifelse", lexer.TOKEN_IF, true},
		{"ifelse-narrow", lexer.TOKEN_IF, true},
		{"function", lexer.TOKEN_TYPE, true},
		{"while", 0, false},
		{"full", 0, false},
	}
	for _, tt := range tests {
		p, err := Builtin(tt.profile)
		if err != nil {
			t.Fatal(err)
		}
		kind, ok := p.StartKind()
		if ok != tt.ok || kind != tt.kind {
			t.Errorf("%s: StartKind() = %v, %v; want %v, %v", tt.profile, kind, ok, tt.kind, tt.ok)
		}
	}

	p, err := Build(Spec{Base: "while", Start: "assign"})
	if err != nil {
		t.Fatal(err)
	}
	if kind, ok := p.StartKind(); !ok || kind != lexer.TOKEN_IDENTIFIER {
		t.Errorf("assign start = %v, %v", kind, ok)
	}

	// A base profile's start construct is inherited.
	p, err = Build(Spec{Base: "ifelse", Expressions: "narrow"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Start != ConstructIf {
		t.Errorf("inherited start = %q", p.Start)
	}
}
