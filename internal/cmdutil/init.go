package cmdutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/config"
	"github.com/barun-bash/cfront/internal/profile"
)

// StarterName is the program written by init.
const StarterName = "main.cf"

// InitProject scaffolds a cfront project in dir. It prompts for a profile
// and a color theme, writes .cfront/config.toml and, when starter is set,
// a main.cf written for the chosen profile. An existing main.cf is kept.
// Returns the paths it created.
func InitProject(dir, defaultProfile string, starter bool, in io.Reader, out io.Writer) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(config.Path(dir)); err == nil {
		return nil, fmt.Errorf("%s already exists", config.Path(dir))
	}
	if defaultProfile == "" {
		defaultProfile = profile.DefaultName
	}

	scanner := bufio.NewScanner(in)
	profName := Prompt(scanner, out, "Profile", profile.BuiltinNames(), defaultProfile)
	if _, err := profile.Builtin(profName); err != nil {
		return nil, err
	}
	theme := Prompt(scanner, out, "Theme", cli.ThemeNames(), cli.CurrentThemeName())
	if cli.GetTheme(theme) == nil {
		return nil, fmt.Errorf("unknown theme %q, available: %s", theme, strings.Join(cli.ThemeNames(), ", "))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create directory %s: %w", dir, err)
	}

	cfg := config.Default()
	cfg.Profile = profName
	cfg.Theme = theme
	if err := config.Save(dir, cfg); err != nil {
		return nil, err
	}
	created := []string{config.Path(dir)}

	if !starter {
		return created, nil
	}
	path := filepath.Join(dir, StarterName)
	if _, err := os.Stat(path); err == nil {
		return created, nil
	}
	if err := os.WriteFile(path, []byte(StarterSource(profName)), 0644); err != nil {
		return nil, fmt.Errorf("could not write %s: %w", path, err)
	}
	return append(created, path), nil
}

// Prompt asks the user to choose from options. Empty input picks
// defaultVal; a case-insensitive match or unique prefix picks that option.
// Anything else is returned as typed.
func Prompt(scanner *bufio.Scanner, out io.Writer, label string, options []string, defaultVal string) string {
	fmt.Fprintf(out, "%s (%s) [%s]: ", label, strings.Join(options, "/"), defaultVal)
	if !scanner.Scan() {
		return defaultVal
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return defaultVal
	}

	var prefixed []string
	for _, opt := range options {
		if strings.EqualFold(input, opt) {
			return opt
		}
		if strings.HasPrefix(strings.ToLower(opt), strings.ToLower(input)) {
			prefixed = append(prefixed, opt)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0]
	}
	return input
}

// StarterSource returns a small program that checks cleanly under the
// named built-in profile.
func StarterSource(profName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Starter program for profile %s.\n", profName)
	fmt.Fprintf(&b, "// Check it with: cfront check %s\n\n", StarterName)

	switch profName {
	case "if":
		b.WriteString("if (count < 10) {\n    count = count + 1;\n}\n")
	case "ifelse", "ifelse-narrow":
		b.WriteString("if (count < 10) {\n    count = count + 1;\n} else {\n    count = 0;\n}\n")
	case "while":
		b.WriteString("count = 0;\nwhile (count < 10) {\n    count = count + 1;\n}\n")
	case "function":
		b.WriteString("int clamp(int value, int limit) {\n    if (value > limit) {\n        return limit;\n    }\n    return value;\n}\n")
	default:
		b.WriteString("int step(int n) {\n    return n + 1;\n}\n\n")
		b.WriteString("count = 0;\nwhile (count < 10) {\n    if (count == 5) {\n        count = count + 2;\n    } else {\n        count = count + 1;\n    }\n}\n")
	}
	return b.String()
}

// RunInit runs InitProject and reports what it created.
func RunInit(out, errOut io.Writer, in io.Reader, dir, defaultProfile string, starter bool) int {
	created, err := InitProject(dir, defaultProfile, starter, in, out)
	fmt.Fprintln(out)
	if err != nil {
		fmt.Fprintln(errOut, cli.Error(err.Error()))
		return ExitUsage
	}
	for _, path := range created {
		fmt.Fprintln(out, cli.Success("Created "+path))
	}
	if len(created) > 1 {
		fmt.Fprintf(out, "\n%s\n", cli.Muted("Next: cfront check "+created[len(created)-1]))
	}
	return ExitOK
}
