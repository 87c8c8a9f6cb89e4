package cmdutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/config"
	"github.com/barun-bash/cfront/internal/parser"
	"github.com/barun-bash/cfront/internal/profile"
)

func testEnv(t *testing.T, profileName string) *Env {
	t.Helper()
	cli.ColorEnabled = false
	cfg := config.Default()
	cfg.Profile = profileName
	p, err := cfg.ResolveProfile()
	if err != nil {
		t.Fatal(err)
	}
	return &Env{Config: cfg, Profile: p, Logger: slog.New(slog.DiscardHandler), RunID: "test"}
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvProfile, "")
	t.Setenv(config.EnvLogLevel, "")
}

func TestRunCheckValid(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer

	code := RunCheck(&out, &errOut, env, "main.cf", "x = 1;\nint f(int a) { return a; }\n", "")
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut.String())
	}
	want := "✓ main.cf is valid: 1 function, 1 statement (profile full)\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestRunCheckInvalid(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer

	code := RunCheck(&out, &errOut, env, "main.cf", "x = ;\n", "text")
	if code != ExitDiagnostics {
		t.Fatalf("exit = %d, want %d", code, ExitDiagnostics)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	for _, want := range []string{"main.cf:1:5: syntax error:", "[S001]", "x = ;", "1 error found"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}
}

func TestRunCheckDiagnosticLimit(t *testing.T) {
	env := testEnv(t, "full")
	env.Config.MaxDiagnostics = 2
	var out, errOut bytes.Buffer

	if code := RunCheck(&out, &errOut, env, "main.cf", "@@@@@", ""); code != ExitDiagnostics {
		t.Fatalf("exit = %d", code)
	}
	if got := strings.Count(errOut.String(), "[L001]"); got != 2 {
		t.Errorf("rendered %d diagnostics, want 2", got)
	}
	for _, want := range []string{"3 more diagnostics suppressed", "5 errors found"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}
}

func TestRunCheckJSON(t *testing.T) {
	env := testEnv(t, "full")

	var out, errOut bytes.Buffer
	if code := RunCheck(&out, &errOut, env, "ok.cf", "void f() { } y = 2;", "json"); code != ExitOK {
		t.Fatalf("exit = %d", code)
	}
	var report checkReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if !report.Valid || report.Functions != 1 || report.Statements != 1 || len(report.Diagnostics) != 0 {
		t.Errorf("unexpected report %+v", report)
	}
	if report.Run != "test" {
		t.Errorf("run = %q, want the env run id", report.Run)
	}

	out.Reset()
	if code := RunCheck(&out, &errOut, env, "bad.cf", "x = ;", "json"); code != ExitDiagnostics {
		t.Fatalf("exit = %d", code)
	}
	report = checkReport{}
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if report.Valid || len(report.Diagnostics) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	d := report.Diagnostics[0]
	if d.Code != "S001" || d.Severity != "syntax" || d.Line != 1 || d.Column != 5 {
		t.Errorf("diagnostic = %+v", d)
	}
	if strings.Join(d.Expected, ",") != "identifier,number" {
		t.Errorf("expected = %v", d.Expected)
	}
}

func TestRunCheckUsesProfile(t *testing.T) {
	env := testEnv(t, "while")
	var out, errOut bytes.Buffer

	if code := RunCheck(&out, &errOut, env, "main.cf", "if (a < b) { } else { }", ""); code != ExitDiagnostics {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(errOut.String(), "[S003]") {
		t.Errorf("expected disabled construct diagnostic:\n%s", errOut.String())
	}
}

func TestRunCheckBadFormat(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer
	if code := RunCheck(&out, &errOut, env, "main.cf", "x = 1;", "xml"); code != ExitUsage {
		t.Errorf("exit = %d, want %d", code, ExitUsage)
	}
}

func TestRunTokensText(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer

	if code := RunTokens(&out, &errOut, env, "main.cf", "x = 10;", ""); code != ExitOK {
		t.Fatalf("exit = %d", code)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 tokens, got %d:\n%s", len(lines), out.String())
	}
	if f := strings.Fields(lines[0]); strings.Join(f, " ") != "1:1 IDENTIFIER x" {
		t.Errorf("first line = %q", lines[0])
	}
	if f := strings.Fields(lines[2]); strings.Join(f, " ") != "1:5 NUMBER 10" {
		t.Errorf("number line = %q", lines[2])
	}
	if f := strings.Fields(lines[4]); strings.Join(f, " ") != "1:8 EOF" {
		t.Errorf("last line = %q", lines[4])
	}
}

func TestRunTokensJSON(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer

	if code := RunTokens(&out, &errOut, env, "main.cf", "while (n > 0)", "json"); code != ExitOK {
		t.Fatalf("exit = %d", code)
	}
	var records []tokenRecord
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].Kind != "WHILE" || records[3].Kind != "GT" {
		t.Errorf("kinds = %s, %s", records[0].Kind, records[3].Kind)
	}
	if records[4].Value == nil || *records[4].Value != 0 {
		t.Errorf("number record = %+v", records[4])
	}
	if records[0].Value != nil {
		t.Error("keyword should carry no value")
	}
}

func TestRunTokensProfileKeywords(t *testing.T) {
	env := testEnv(t, "if")
	var out, errOut bytes.Buffer

	RunTokens(&out, &errOut, env, "main.cf", "while", "")
	if !strings.Contains(out.String(), "IDENTIFIER") {
		t.Errorf("while is not reserved in profile if:\n%s", out.String())
	}
}

func TestRunTokensIllegal(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer

	if code := RunTokens(&out, &errOut, env, "main.cf", "x @ y", ""); code != ExitDiagnostics {
		t.Fatalf("exit = %d", code)
	}
	if strings.Count(out.String(), "IDENTIFIER") != 2 {
		t.Errorf("recognized tokens should still be listed:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "[L001]") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunAST(t *testing.T) {
	env := testEnv(t, "full")
	source := "int add(int a, int b) { return a + b; }\nx = add;\n"
	prog, diags := parser.Parse(source)
	if len(diags) > 0 {
		t.Fatal(diags[0])
	}

	tests := []struct {
		format string
		want   string
	}{
		{"", `"kind": "function"`},
		{"json", `"name": "add"`},
		{"yaml", "kind: return"},
		{"source", parser.Print(prog)},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if code := RunAST(&out, &errOut, env, "main.cf", source, tt.format); code != ExitOK {
				t.Fatalf("exit = %d, stderr:\n%s", code, errOut.String())
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestRunASTErrors(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer

	if code := RunAST(&out, &errOut, env, "main.cf", "x = 1;", "xml"); code != ExitUsage {
		t.Errorf("bad format exit = %d", code)
	}
	if code := RunAST(&out, &errOut, env, "main.cf", "x = ;", "json"); code != ExitDiagnostics {
		t.Errorf("invalid source exit = %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("no tree should be written, got %q", out.String())
	}
}

func TestRunProfilesList(t *testing.T) {
	env := testEnv(t, "while")
	env.Config.Profiles = map[string]profile.Spec{
		"legacy": {Base: "while", Expressions: "narrow"},
	}
	var out, errOut bytes.Buffer

	if code := RunProfiles(&out, &errOut, env, "", ""); code != ExitOK {
		t.Fatalf("exit = %d", code)
	}
	for _, name := range profile.BuiltinNames() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("listing missing %q", name)
		}
	}
	for _, want := range []string{"* while", "Project profiles", "legacy", "narrow expressions"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("listing missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunProfilesShowAndExport(t *testing.T) {
	env := testEnv(t, "full")
	path := filepath.Join(t.TempDir(), "while.yaml")
	var out, errOut bytes.Buffer

	if code := RunProfiles(&out, &errOut, env, "while", path); code != ExitOK {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut.String())
	}
	for _, want := range []string{"Profile while", "assign, if, while", "program", "Wrote profile while"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	p, err := profile.LoadFile(path)
	if err != nil {
		t.Fatalf("exported profile does not load: %v", err)
	}
	if p.Name != "while" || !p.Enabled(profile.ConstructWhile) || p.Enabled(profile.ConstructFunction) {
		t.Errorf("exported profile = %+v", p.Spec())
	}
}

func TestRunProfilesShowsStart(t *testing.T) {
	env := testEnv(t, "full")
	path := filepath.Join(t.TempDir(), "fn.toml")
	var out, errOut bytes.Buffer

	if code := RunProfiles(&out, &errOut, env, "function", path); code != ExitOK {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "start:       function") {
		t.Errorf("output missing start construct:\n%s", out.String())
	}

	p, err := profile.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Start != profile.ConstructFunction || !p.SingleItem {
		t.Errorf("exported profile = %+v", p.Spec())
	}
}

func TestRunProfilesErrors(t *testing.T) {
	env := testEnv(t, "full")
	var out, errOut bytes.Buffer

	if code := RunProfiles(&out, &errOut, env, "pascal", ""); code != ExitUsage {
		t.Errorf("unknown profile exit = %d", code)
	}
	if !strings.Contains(errOut.String(), "unknown profile") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if code := RunProfiles(&out, &errOut, env, "", "out.toml"); code != ExitUsage {
		t.Errorf("export without name exit = %d", code)
	}
}

func TestSetup(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() { _ = cli.SetTheme("default") })

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".cfront"), 0755); err != nil {
		t.Fatal(err)
	}
	data := "profile = \"while\"\ntheme = \"minimal\"\nlog_level = \"error\"\n"
	if err := os.WriteFile(config.Path(dir), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	env, err := Setup(Options{Dir: dir, Verbose: true, LogOutput: &logs})
	if err != nil {
		t.Fatal(err)
	}
	if env.Profile.Name != "while" {
		t.Errorf("profile = %q", env.Profile.Name)
	}
	if cli.CurrentThemeName() != "minimal" {
		t.Errorf("theme = %q", cli.CurrentThemeName())
	}
	if !env.Logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose should enable debug logging")
	}
	if env.RunID == "" || !strings.Contains(logs.String(), "run="+env.RunID) {
		t.Errorf("log output should carry the run id:\n%s", logs.String())
	}

	env, err = Setup(Options{Dir: dir, Profile: "ifelse", LogOutput: &logs})
	if err != nil {
		t.Fatal(err)
	}
	if env.Profile.Name != "ifelse" {
		t.Errorf("flag override: profile = %q", env.Profile.Name)
	}
	if env.Logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("configured level error should suppress warnings")
	}
}

func TestSetupProfileFile(t *testing.T) {
	clearEnv(t)
	p, err := profile.Builtin("ifelse-narrow")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "narrow.toml")
	if err := profile.WriteFile(path, p); err != nil {
		t.Fatal(err)
	}

	env, err := Setup(Options{Dir: t.TempDir(), Profile: "while", ProfileFile: path, LogOutput: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if env.Profile.Name != "ifelse-narrow" || env.Profile.Expressions != profile.ExprNarrow {
		t.Errorf("profile file should win, got %+v", env.Profile.Spec())
	}
}

func TestSetupErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown profile", Options{Dir: t.TempDir(), Profile: "pascal"}},
		{"missing config", Options{ConfigPath: filepath.Join(t.TempDir(), "none.toml")}},
		{"missing profile file", Options{Dir: t.TempDir(), ProfileFile: filepath.Join(t.TempDir(), "p.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.LogOutput = &bytes.Buffer{}
			if _, err := Setup(tt.opts); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestReadSource(t *testing.T) {
	name, source, err := ReadSource("-", strings.NewReader("x = 1;"))
	if err != nil || name != "<stdin>" || source != "x = 1;" {
		t.Errorf("stdin: %q %q %v", name, source, err)
	}

	path := filepath.Join(t.TempDir(), "main.cf")
	if err := os.WriteFile(path, []byte("y = 2;"), 0644); err != nil {
		t.Fatal(err)
	}
	name, source, err = ReadSource(path, nil)
	if err != nil || name != path || source != "y = 2;" {
		t.Errorf("file: %q %q %v", name, source, err)
	}

	if _, _, err := ReadSource(filepath.Join(t.TempDir(), "nope.cf"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCheckSummary(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"", "a.cf is valid (profile full)"},
		{"x = 1; y = 2;", "a.cf is valid: 2 statements (profile full)"},
		{"void f() { } void g() { }", "a.cf is valid: 2 functions (profile full)"},
	}
	for _, tt := range tests {
		prog, diags := parser.Parse(tt.source)
		if len(diags) > 0 {
			t.Fatal(diags[0])
		}
		if got := CheckSummary(prog, "a.cf", "full"); got != tt.want {
			t.Errorf("CheckSummary(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "s"},
		{1, ""},
		{2, "s"},
		{100, "s"},
	}
	for _, tt := range tests {
		got := Plural(tt.n)
		if got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
