package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/jacoelho/cssq/internal/css/parse"
	"github.com/jacoelho/cssq/internal/exit"
	"github.com/jacoelho/cssq/internal/formatter"
	"github.com/jacoelho/cssq/internal/httpclient"
	"github.com/jacoelho/cssq/internal/source"
)

const (
	// DefaultTimeout is the default timeout for HTTP requests.
	DefaultTimeout = 30 * time.Second
)

var (
	ErrNoArguments  = errors.New("no arguments provided")
	ErrNoQuery      = errors.New("one of --query, --sheet or --suite is required")
	ErrExclusive    = errors.New("--query, --sheet and --suite are mutually exclusive")
	ErrInvalidColor = errors.New("color must be auto, always or never")
	ErrWatchStdin   = errors.New("--watch cannot read from stdin")
	ErrWatchRemote  = errors.New("--watch needs at least one local input")
)

// ColorMode selects when text output is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// String implements flag.Value.
func (c *ColorMode) String() string {
	if c == nil || *c == "" {
		return string(ColorAuto)
	}
	return string(*c)
}

// Set implements flag.Value.
func (c *ColorMode) Set(value string) error {
	switch m := ColorMode(strings.ToLower(value)); m {
	case ColorAuto, ColorAlways, ColorNever:
		*c = m
		return nil
	}
	return fmt.Errorf("%w, got: %s", ErrInvalidColor, value)
}

// formatFlag implements flag.Value over formatter.ParseFormat.
type formatFlag struct {
	format *formatter.Format
}

func (f formatFlag) String() string {
	if f.format == nil {
		return string(formatter.FormatText)
	}
	return string(*f.format)
}

func (f formatFlag) Set(value string) error {
	parsed, err := formatter.ParseFormat(value)
	if err != nil {
		return err
	}
	*f.format = parsed
	return nil
}

// Config represents the complete configuration for the cssq tool.
type Config struct {
	// What to evaluate; exactly one is set.
	Query     string
	SheetFile string
	SuiteFile string

	// Files, directories, URLs or "-" for stdin.
	Inputs []string

	// Output
	Format formatter.Format
	Color  ColorMode
	Debug  bool

	// Execution
	Jobs        int
	MaxSize     int
	Strict      bool
	NoPrefilter bool
	Watch       bool
	MetricsFile string

	// HTTP client configuration
	RequestTimeout time.Duration
	RateLimit      float64 // Requests per second (0 = unlimited)
	UserAgent      string
}

// Colorize reports whether text written to f should be coloured.
func (c *Config) Colorize(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	set := 0
	for _, s := range []string{c.Query, c.SheetFile, c.SuiteFile} {
		if s != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return ErrNoQuery
	case set > 1:
		return ErrExclusive
	}

	if c.Jobs < 1 {
		return fmt.Errorf("--jobs must be positive, got: %d", c.Jobs)
	}
	if c.MaxSize < 1 {
		return fmt.Errorf("--max-size must be positive, got: %d", c.MaxSize)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("--rate-limit must not be negative, got: %g", c.RateLimit)
	}

	for _, file := range []string{c.SheetFile, c.SuiteFile} {
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("file %s not found: %w", file, err)
		}
	}

	if c.Watch {
		local := 0
		for _, in := range c.Inputs {
			switch {
			case in == source.Stdin:
				return ErrWatchStdin
			case !source.IsRemote(in):
				local++
			}
		}
		if local == 0 {
			return ErrWatchRemote
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Usagef("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	config := &Config{
		Format: formatter.FormatText,
		Color:  ColorAuto,
	}

	fs.StringVar(&config.Query, "query", "", "Selector query")
	fs.StringVar(&config.Query, "q", "", "Selector query (shorthand)")
	fs.StringVar(&config.SheetFile, "sheet", "", "Rule sheet file")
	fs.StringVar(&config.SuiteFile, "suite", "", "Suite file")
	fs.Var(formatFlag{format: &config.Format}, "format", "Output format: text, json or yaml")
	fs.Var(&config.Color, "color", "Colour text output: auto, always or never")
	fs.IntVar(&config.Jobs, "jobs", runtime.GOMAXPROCS(0), "Documents processed concurrently")
	fs.DurationVar(&config.RequestTimeout, "timeout", DefaultTimeout, "HTTP request timeout")
	fs.Float64Var(&config.RateLimit, "rate-limit", 0, "Rate limit in requests per second (0 for unlimited)")
	fs.StringVar(&config.UserAgent, "user-agent", httpclient.DefaultUserAgent, "User-Agent sent when fetching URLs")
	fs.IntVar(&config.MaxSize, "max-size", parse.DefaultMaxSize, "Largest accepted input in bytes")
	fs.BoolVar(&config.Strict, "strict", false, "Reject documents with syntax errors")
	fs.BoolVar(&config.NoPrefilter, "no-prefilter", false, "Match every selector regardless of document summary")
	fs.BoolVar(&config.Watch, "watch", false, "Re-run when local inputs change")
	fs.StringVar(&config.MetricsFile, "metrics", "", "Write Prometheus textfile metrics to FILE")
	fs.BoolVar(&config.Debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Usagef("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	config.Inputs = fs.Args()
	if len(config.Inputs) == 0 {
		config.Inputs = []string{source.Stdin}
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `cssq - query stylesheets with selectors

Usage: cssq [options] [input ...]

Inputs are files, directories (searched for *.css), http(s) URLs or - for
stdin. Without inputs, stdin is read.

Options:
  -q, --query SELECTOR    Selector query to match
  --sheet FILE            Rule sheet collecting stats and diagnostics
  --suite FILE            Suite of queries with expected results
  --format FORMAT         Output format: text, json or yaml (default: text)
  --color WHEN            Colour text output: auto, always or never (default: auto)
  --jobs N                Documents processed concurrently (default: CPUs)
  --timeout DURATION      HTTP request timeout (default: 30s)
  --rate-limit N          Rate limit in requests per second (0 for unlimited)
  --user-agent STRING     User-Agent sent when fetching URLs (default: cssq)
  --max-size BYTES        Largest accepted input (default: 10MiB)
  --strict                Reject documents with syntax errors
  --no-prefilter          Match every selector regardless of document summary
  --watch                 Re-run when local inputs change
  --metrics FILE          Write Prometheus textfile metrics to FILE
  --debug                 Enable debug logging
  -h, --help              Show this help message

Exit codes:
  0  success
  1  failed suite case, error diagnostic or unreadable document
  2  usage error or invalid query

Examples:
  cssq -q 'style-rule > [name=color]' site.css
  cssq -q ':prefixed(webkit)' --format json styles/
  cssq --sheet lint.yaml --watch styles/
  cssq --suite checks.yaml https://example.com/main.css
  cat a.css | cssq -q '*:important'`
}
