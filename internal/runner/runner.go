package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/cssq/internal/clock"
	"github.com/jacoelho/cssq/internal/config"
	"github.com/jacoelho/cssq/internal/css/parse"
	"github.com/jacoelho/cssq/internal/exit"
	"github.com/jacoelho/cssq/internal/formatter"
	"github.com/jacoelho/cssq/internal/formatter/stdout"
	"github.com/jacoelho/cssq/internal/formatter/structured"
	"github.com/jacoelho/cssq/internal/httpclient"
	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/metrics"
	"github.com/jacoelho/cssq/internal/ratelimit"
	"github.com/jacoelho/cssq/internal/results"
	"github.com/jacoelho/cssq/internal/selector"
	"github.com/jacoelho/cssq/internal/sheet"
	"github.com/jacoelho/cssq/internal/source"
	"github.com/jacoelho/cssq/internal/suite"
)

// Runner matches queries, rule sheets or suites against stylesheets.
type Runner struct {
	config    *config.Config
	loader    *source.Loader
	parser    *parse.Parser
	formatter formatter.Formatter
	metrics   *metrics.Recorder
	logger    *slog.Logger
	options   []match.Option

	mode  results.Mode
	list  *selector.List
	sheet *sheet.Sheet
	suite *suite.Suite
}

// New creates a new Runner with the provided configuration.
// If the query, sheet or suite does not compile, returns nil runner and a
// usage exit result.
func New(cfg *config.Config) (*Runner, *exit.Result) {
	limiter := ratelimit.New(cfg.RateLimit)
	client := httpclient.New(httpclient.Options{
		Timeout:   cfg.RequestTimeout,
		Jobs:      cfg.Jobs,
		UserAgent: cfg.UserAgent,
	})

	r := &Runner{
		config:    cfg,
		loader:    source.NewLoader(client, limiter, int64(cfg.MaxSize)),
		parser:    parse.NewParser(parse.WithMaxSize(cfg.MaxSize), parse.WithStrict(cfg.Strict)),
		formatter: newFormatter(cfg),
		logger:    slog.Default(),
	}
	if cfg.NoPrefilter {
		r.options = append(r.options, match.WithoutPrefilter())
	}
	if cfg.MetricsFile != "" {
		r.metrics = metrics.New()
	}

	if err := r.compile(); err != nil {
		return nil, exit.Usagef("Error: %v\n", err)
	}
	return r, nil
}

func newFormatter(cfg *config.Config) formatter.Formatter {
	switch cfg.Format {
	case formatter.FormatJSON:
		return structured.NewJSON()
	case formatter.FormatYAML:
		return structured.NewYAML()
	default:
		return stdout.New(cfg.Colorize(os.Stdout))
	}
}

// compile loads whichever of query, sheet or suite is configured.
func (r *Runner) compile() error {
	switch {
	case r.config.SheetFile != "":
		s, err := loadFile(r.config.SheetFile, sheet.Load)
		if err != nil {
			return err
		}
		r.mode, r.sheet = results.ModeSheet, s
	case r.config.SuiteFile != "":
		s, err := loadFile(r.config.SuiteFile, suite.Load)
		if err != nil {
			return err
		}
		r.mode, r.suite = results.ModeSuite, s
	default:
		list, err := selector.Parse(r.config.Query)
		if err != nil {
			return err
		}
		r.mode, r.list = results.ModeQuery, list
	}
	return nil
}

func loadFile[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	v, err := load(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// SetFormatter replaces the output formatter.
func (r *Runner) SetFormatter(f formatter.Formatter) {
	r.formatter = f
}

// SetStdin replaces the reader used for the "-" input.
func (r *Runner) SetStdin(in io.Reader) {
	r.loader.SetStdin(in)
}

// SetLogger replaces the logger, which defaults to slog.Default.
func (r *Runner) SetLogger(l *slog.Logger) {
	r.logger = l
}

// Run executes the configured inputs and returns the process exit code.
func (r *Runner) Run(ctx context.Context) int {
	code := r.report(r.RunOnce(ctx))
	if !r.config.Watch {
		return code
	}
	return r.watch(ctx, code)
}

// report formats a run and maps it to an exit code.
func (r *Runner) report(s *results.Summary, err error) int {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			r.logger.Info("run interrupted")
		} else {
			r.logger.Error("run failed", "error", err)
		}
		return exit.CodeFailure
	}

	if err := r.formatter.Format(s); err != nil {
		r.logger.Error("formatting results", "error", err)
		return exit.CodeFailure
	}

	if r.metrics != nil {
		r.metrics.Observe(s, r.config.Query)
		if err := r.metrics.WriteFile(r.config.MetricsFile); err != nil {
			r.logger.Error("writing metrics", "path", r.config.MetricsFile, "error", err)
		}
	}

	if s.Failed() {
		return exit.CodeFailure
	}
	return exit.CodeSuccess
}

// RunOnce processes every input once. Documents are handled concurrently up
// to the configured number of jobs; the summary keeps input order.
func (r *Runner) RunOnce(ctx context.Context) (*results.Summary, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	names, err := source.Expand(r.config.Inputs)
	if err != nil {
		return nil, err
	}

	start := clock.Now()
	builders := make([]*results.DocumentResultBuilder, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.config.Jobs, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			builders[i] = r.process(gctx, logger, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := results.NewSummary(runID, r.mode, len(names))
	for _, b := range builders {
		s.Add(b)
	}
	s.SetTotalDuration(clock.Since(start))

	logger.Info("run complete",
		"documents", s.ProcessedDocuments,
		"matches", s.TotalMatches,
		"failed", s.FailedDocuments,
		"duration", s.TotalDuration)
	return s, nil
}
