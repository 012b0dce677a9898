package runner

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/jacoelho/cssq/internal/exit"
	"github.com/jacoelho/cssq/internal/source"
	"github.com/jacoelho/cssq/internal/watch"
)

// watch re-runs after every batch of changes until ctx is done and returns
// the exit code of the last run.
func (r *Runner) watch(ctx context.Context, code int) int {
	w, err := watch.New(r.watchPaths(), watch.DefaultDebounce, r.logger)
	if err != nil {
		r.logger.Error("watch failed", "error", err)
		return exit.CodeFailure
	}
	defer w.Close()

	r.logger.Info("watching for changes")
	err = w.Run(ctx, func(changed []string) {
		r.logger.Info("change detected", "paths", changed)
		if r.definitionChanged(changed) {
			if err := r.compile(); err != nil {
				r.logger.Error("reload failed, keeping previous definition", "error", err)
				return
			}
		}
		code = r.report(r.RunOnce(ctx))
	})
	if err != nil {
		r.logger.Error("watch failed", "error", err)
		return exit.CodeFailure
	}
	return code
}

func (r *Runner) watchPaths() []string {
	var paths []string
	for _, in := range r.config.Inputs {
		if in != source.Stdin && !source.IsRemote(in) {
			paths = append(paths, in)
		}
	}
	for _, f := range []string{r.config.SheetFile, r.config.SuiteFile} {
		if f != "" {
			paths = append(paths, f)
		}
	}
	return paths
}

// definitionChanged reports whether the sheet or suite file is among changed.
func (r *Runner) definitionChanged(changed []string) bool {
	for _, f := range []string{r.config.SheetFile, r.config.SuiteFile} {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		if slices.Contains(changed, abs) {
			return true
		}
	}
	return false
}
