package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jacoelho/cssq/internal/css/parse"
	"github.com/jacoelho/cssq/internal/exit"
	"github.com/jacoelho/cssq/internal/formatter"
	"github.com/jacoelho/cssq/internal/httpclient"
)

func defaults(inputs ...string) *Config {
	return &Config{
		Inputs:         inputs,
		Format:         formatter.FormatText,
		Color:          ColorAuto,
		Jobs:           runtime.GOMAXPROCS(0),
		MaxSize:        parse.DefaultMaxSize,
		RequestTimeout: DefaultTimeout,
		UserAgent:      httpclient.DefaultUserAgent,
	}
}

func TestParse(t *testing.T) {
	tempDir := t.TempDir()
	cssFile := filepath.Join(tempDir, "site.css")
	sheetFile := filepath.Join(tempDir, "sheet.yaml")
	suiteFile := filepath.Join(tempDir, "suite.yaml")
	for _, f := range []string{cssFile, sheetFile, suiteFile} {
		if err := os.WriteFile(f, []byte("a {}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	with := func(c *Config, edit func(*Config)) *Config {
		edit(c)
		return c
	}

	tests := []struct {
		name     string
		args     []string
		want     *Config
		wantCode int
	}{
		{
			name: "query_single_file",
			args: []string{"cssq", "--query", "style-rule", cssFile},
			want: with(defaults(cssFile), func(c *Config) { c.Query = "style-rule" }),
		},
		{
			name: "short_query_reads_stdin",
			args: []string{"cssq", "-q", "*:important"},
			want: with(defaults("-"), func(c *Config) { c.Query = "*:important" }),
		},
		{
			name: "sheet",
			args: []string{"cssq", "--sheet", sheetFile, cssFile},
			want: with(defaults(cssFile), func(c *Config) { c.SheetFile = sheetFile }),
		},
		{
			name: "suite_with_url",
			args: []string{"cssq", "--suite", suiteFile, "https://example.com/a.css"},
			want: with(defaults("https://example.com/a.css"), func(c *Config) { c.SuiteFile = suiteFile }),
		},
		{
			name: "all_options",
			args: []string{
				"cssq", "-q", "a", "--format", "JSON", "--color", "never", "--jobs", "3",
				"--timeout", "5s", "--rate-limit", "2.5", "--user-agent", "ci-lint/1.0", "--max-size", "1024", "--strict",
				"--no-prefilter", "--watch", "--metrics", "out.prom", "--debug", cssFile,
			},
			want: with(defaults(cssFile), func(c *Config) {
				c.Query = "a"
				c.Format = formatter.FormatJSON
				c.Color = ColorNever
				c.Jobs = 3
				c.RequestTimeout = 5 * time.Second
				c.RateLimit = 2.5
				c.UserAgent = "ci-lint/1.0"
				c.MaxSize = 1024
				c.Strict = true
				c.NoPrefilter = true
				c.Watch = true
				c.MetricsFile = "out.prom"
				c.Debug = true
			}),
		},
		{name: "no_arguments", args: nil, wantCode: exit.CodeUsage},
		{name: "missing_query", args: []string{"cssq", cssFile}, wantCode: exit.CodeUsage},
		{name: "query_and_sheet", args: []string{"cssq", "-q", "a", "--sheet", sheetFile}, wantCode: exit.CodeUsage},
		{name: "missing_sheet_file", args: []string{"cssq", "--sheet", filepath.Join(tempDir, "nope.yaml")}, wantCode: exit.CodeUsage},
		{name: "bad_format", args: []string{"cssq", "-q", "a", "--format", "xml"}, wantCode: exit.CodeUsage},
		{name: "bad_color", args: []string{"cssq", "-q", "a", "--color", "sometimes"}, wantCode: exit.CodeUsage},
		{name: "zero_jobs", args: []string{"cssq", "-q", "a", "--jobs", "0"}, wantCode: exit.CodeUsage},
		{name: "negative_rate", args: []string{"cssq", "-q", "a", "--rate-limit", "-1"}, wantCode: exit.CodeUsage},
		{name: "watch_stdin", args: []string{"cssq", "-q", "a", "--watch"}, wantCode: exit.CodeUsage},
		{name: "watch_only_urls", args: []string{"cssq", "-q", "a", "--watch", "http://x/a.css"}, wantCode: exit.CodeUsage},
		{name: "unknown_flag", args: []string{"cssq", "--repeat", "1"}, wantCode: exit.CodeUsage},
		{name: "help_flag", args: []string{"cssq", "--help"}, wantCode: exit.CodeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, exitResult := Parse(tt.args)

			if tt.want == nil {
				if exitResult == nil {
					t.Fatalf("Parse() expected exit result but got none")
				}
				if exitResult.ExitCode != tt.wantCode {
					t.Errorf("Parse() exit code = %d, want %d", exitResult.ExitCode, tt.wantCode)
				}
				return
			}

			if exitResult != nil {
				t.Fatalf("Parse() unexpected error: exit code %d, message: %s", exitResult.ExitCode, exitResult.Message)
			}
			if !reflect.DeepEqual(cfg, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestColorMode(t *testing.T) {
	tests := []struct {
		value   string
		want    ColorMode
		wantErr bool
	}{
		{value: "auto", want: ColorAuto},
		{value: "ALWAYS", want: ColorAlways},
		{value: "never", want: ColorNever},
		{value: "yes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var c ColorMode
			err := c.Set(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("Set() error = %v, want %v", err, ErrInvalidColor)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set() unexpected error: %v", err)
			}
			if c != tt.want {
				t.Errorf("Set() = %q, want %q", c, tt.want)
			}
		})
	}
}

func TestConfig_Colorize(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tests := []struct {
		mode ColorMode
		want bool
	}{
		{mode: ColorAlways, want: true},
		{mode: ColorNever, want: false},
		// a regular file is never a terminal
		{mode: ColorAuto, want: false},
	}
	for _, tt := range tests {
		c := &Config{Color: tt.mode}
		if got := c.Colorize(f); got != tt.want {
			t.Errorf("Colorize(%s) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestUsage(t *testing.T) {
	usage := Usage()

	expectedSections := []string{
		"Usage: cssq [options]",
		"Options:",
		"--query",
		"--sheet",
		"--suite",
		"--watch",
		"--metrics",
		"Exit codes:",
		"Examples:",
	}

	for _, section := range expectedSections {
		if !strings.Contains(usage, section) {
			t.Errorf("Usage() missing expected section: %s", section)
		}
	}
}
