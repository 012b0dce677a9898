package runner

import (
	"context"
	"log/slog"

	"github.com/jacoelho/cssq/internal/clock"
	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/results"
)

// process loads, parses and evaluates one document. Failures are recorded on
// the result so the remaining documents still run.
func (r *Runner) process(ctx context.Context, logger *slog.Logger, name string) *results.DocumentResultBuilder {
	start := clock.Now()
	b := results.NewDocumentResultBuilder(name)
	defer func() {
		b.WithDuration(clock.Since(start))
	}()

	doc, err := r.loader.Load(ctx, name)
	if err != nil {
		logger.Warn("load failed", "document", name, "error", err)
		return b.WithError(err)
	}

	root, err := r.parser.Parse(ctx, doc.Data)
	if err != nil {
		logger.Warn("parse failed", "document", name, "error", err)
		return b.WithError(err)
	}
	logger.Debug("parsed", "document", name, "bytes", len(doc.Data))

	switch r.mode {
	case results.ModeSheet:
		report, err := r.sheet.Collect(ctx, root, doc.Data, r.options...)
		if err != nil {
			return b.WithError(err)
		}
		b.WithReport(report)
	case results.ModeSuite:
		outputs, err := match.RunAll(ctx, r.suite.Lists(), root, r.options...)
		if err != nil {
			return b.WithError(err)
		}
		cases, err := r.suite.Check(outputs)
		if err != nil {
			return b.WithError(err)
		}
		b.WithCases(cases)
	default:
		b.WithMatches(match.Run(r.list, root, r.options...))
	}
	return b
}
