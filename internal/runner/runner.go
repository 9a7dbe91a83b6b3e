// Package runner executes per-file formatting jobs. Each file is an
// independent unit of work; no formatting decision depends on another
// file's content, so files run in parallel under a bounded pool.
package runner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapfmt/pkg/align"
)

// Status describes the outcome for one file.
type Status int

const (
	// StatusUnchanged means the file was already aligned.
	StatusUnchanged Status = iota
	// StatusRewritten means at least one statement changed.
	StatusRewritten
	// StatusError means the file could not be read or written, or at
	// least one statement failed to parse.
	StatusError
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusRewritten:
		return "rewritten"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("STATUS(%d)", int(s))
	}
}

// Options configures a formatting run.
type Options struct {
	// DryRun reports what would change without writing anything.
	DryRun bool
	// Backup writes <file>.bak with the original content before
	// rewriting.
	Backup bool
	// Jobs bounds the worker pool; 0 means one worker per CPU.
	Jobs int
}

// Result is the per-file outcome handed back to the CLI layer.
type Result struct {
	Path    string
	Status  Status
	Changed bool           // formatting differs from the file content
	Errs    []*align.Error // one per failed statement
	Err     error          // file read/write failure
}

const backupPerm = 0o600

// FormatFile formats one file. Statements that fail to parse are left
// untouched and reported; the well-formed ones are still rewritten,
// so a file with one malformed statement among several still improves.
func FormatFile(path string, opts Options, logger *slog.Logger) Result {
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Status = StatusError
		res.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return res
	}

	formatted, errs := align.Format(string(data))
	res.Errs = errs
	if len(errs) > 0 {
		res.Status = StatusError
		for _, e := range errs {
			logger.Warn("statement left unchanged", "path", path, "error", e)
		}
	}

	if formatted == string(data) {
		logger.Debug("no changes needed", "path", path)
		return res
	}
	res.Changed = true
	if res.Status != StatusError {
		res.Status = StatusRewritten
	}

	if opts.DryRun {
		logger.Debug("dry run, not writing changes", "path", path)
		return res
	}

	if opts.Backup {
		if err := os.WriteFile(path+".bak", data, backupPerm); err != nil {
			res.Status = StatusError
			res.Err = fmt.Errorf("failed to write backup for %s: %w", path, err)
			return res
		}
		logger.Debug("wrote backup", "path", path+".bak")
	}

	if err := os.WriteFile(path, []byte(formatted), filePerm(path)); err != nil {
		res.Status = StatusError
		res.Err = fmt.Errorf("failed to write %s: %w", path, err)
		return res
	}
	logger.Debug("rewrote file", "path", path)

	return res
}

// filePerm returns the file's current permission bits so a rewrite
// preserves them.
func filePerm(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// Run formats paths under a bounded worker pool and returns one
// Result per path, in input order. Individual failures never abort
// the run; they surface in the results.
func Run(ctx context.Context, paths []string, opts Options, logger *slog.Logger) []Result {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	results := make([]Result, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Status: StatusError, Err: err}
				return nil
			}
			results[i] = FormatFile(path, opts, logger)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
