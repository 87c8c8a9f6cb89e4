package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/barun-bash/cfront/internal/cli"
	"github.com/barun-bash/cfront/internal/config"
	cerr "github.com/barun-bash/cfront/internal/errors"
	"github.com/barun-bash/cfront/internal/parser"
	"github.com/barun-bash/cfront/internal/profile"
)

// Process exit codes shared by every command.
const (
	ExitOK          = 0 // input is valid
	ExitDiagnostics = 1 // lexical or syntax errors were reported
	ExitUsage       = 2 // bad flags, unreadable input or broken configuration
)

// Options are the global command-line settings.
type Options struct {
	Dir         string // project directory searched for .cfront/config.toml
	ConfigPath  string // explicit config file; overrides Dir
	Profile     string // profile name; overrides the config
	ProfileFile string // profile description file; overrides Profile
	Verbose     bool   // log at debug level
	NoColor     bool
	LogOutput   io.Writer // defaults to os.Stderr
}

// Env is the resolved state a command runs with.
type Env struct {
	Config  *config.Config
	Profile *profile.Profile
	Logger  *slog.Logger
	RunID   string
}

// Setup loads configuration, resolves the active profile and builds the
// run's logger. Every log record carries the run id.
func Setup(opts Options) (*Env, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if opts.Profile != "" {
		cfg.Profile = opts.Profile
	}

	var prof *profile.Profile
	if opts.ProfileFile != "" {
		prof, err = profile.LoadFile(opts.ProfileFile)
	} else {
		prof, err = cfg.ResolveProfile()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Theme != "" {
		if err := cli.SetTheme(cfg.Theme); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	if opts.NoColor {
		cli.ColorEnabled = false
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}
	w := opts.LogOutput
	if w == nil {
		w = os.Stderr
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With(slog.String("run", runID))

	logger.Debug("environment ready",
		slog.String("profile", prof.Name),
		slog.Int("max_diagnostics", cfg.DiagnosticLimit()))

	return &Env{Config: cfg, Profile: prof, Logger: logger, RunID: runID}, nil
}

func loadConfig(opts Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.LoadFile(opts.ConfigPath)
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return config.Load(dir)
}

// newDiagnostics returns a collector honoring the configured limit.
func (e *Env) newDiagnostics(file string) *cerr.Diagnostics {
	ds := cerr.New(file)
	ds.SetLimit(e.Config.DiagnosticLimit())
	return ds
}

func (e *Env) parseOptions(ds *cerr.Diagnostics) parser.Options {
	return parser.Options{
		Profile:     e.Profile,
		Logger:      e.Logger,
		Diagnostics: ds,
	}
}

// ReadSource reads the named file, or stdin when path is "-". It returns
// the name diagnostics should report.
func ReadSource(path string, stdin io.Reader) (name, source string, err error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return path, string(data), nil
}

// printDiagnostics renders every stored diagnostic with its source snippet
// followed by a total.
func printDiagnostics(w io.Writer, source string, ds *cerr.Diagnostics) {
	for _, d := range ds.All() {
		fmt.Fprint(w, cli.RenderSnippet(source, d))
	}
	if n := ds.Dropped(); n > 0 {
		fmt.Fprintln(w, cli.Warn(fmt.Sprintf("%d more diagnostic%s suppressed", n, Plural(n))))
	}
	total := ds.Len() + ds.Dropped()
	fmt.Fprintf(w, "\n%s\n", cli.Error(fmt.Sprintf("%d error%s found", total, Plural(total))))
}
