// Package runner orchestrates the discover -> lint -> report pipeline.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/memberlint/internal/config"
	"github.com/donaldgifford/memberlint/internal/discover"
	"github.com/donaldgifford/memberlint/internal/lint"
	"github.com/donaldgifford/memberlint/internal/report"
	"github.com/donaldgifford/memberlint/internal/rules"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitError      = 2
)

// stdinName is the path reported for source read from stdin.
const stdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	// Paths are files or directories to check. "-" reads stdin. Empty
	// means the current directory.
	Paths      []string
	ConfigPath string
	// Canonical prints each class in canonical order instead of checking.
	Canonical bool
	Quiet     bool
	Verbose   bool
	// Jobs bounds how many files are linted at once. Zero or negative
	// uses GOMAXPROCS.
	Jobs   int
	Color  bool
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the lint pipeline and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger := newLogger(opts)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.Error("loading config", "err", err)
		return ExitError
	}

	linter, err := lint.New(&cfg.Lint, rules.ClassifyRules())
	if err != nil {
		logger.Error("compiling lint tables", "err", err)
		return ExitError
	}

	results, err := collect(ctx, opts, cfg, linter, logger)
	if err != nil {
		logger.Error("aborting", "err", err)
		return ExitError
	}

	if opts.Canonical {
		for _, res := range results {
			if err := report.Canonical(opts.Stdout, res); err != nil {
				logger.Error("writing listing", "err", err)
				return ExitError
			}
		}
		return ExitOK
	}

	classes, bad := 0, 0
	for _, res := range results {
		classes += len(res.Groups)
		n, err := report.Violations(opts.Stdout, res, report.Options{Color: opts.Color})
		if err != nil {
			logger.Error("writing report", "err", err)
			return ExitError
		}
		bad += n
	}

	logger.Info("checked", "files", len(results), "classes", classes, "violations", bad)

	if bad > 0 {
		return ExitViolations
	}
	return ExitOK
}

func newLogger(opts *Options) *log.Logger {
	logger := log.NewWithOptions(opts.Stderr, log.Options{Prefix: "memberlint"})
	switch {
	case opts.Quiet:
		logger.SetLevel(log.ErrorLevel)
	case opts.Verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// collect lints every selected file. Any read failure aborts the run.
func collect(ctx context.Context, opts *Options, cfg *config.Config, linter *lint.Linter, logger *log.Logger) ([]*lint.FileResult, error) {
	if len(opts.Paths) == 1 && opts.Paths[0] == "-" {
		src, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		if !utf8.Valid(src) {
			return nil, fmt.Errorf("%s: %w", stdinName, errNotUTF8)
		}
		return []*lint.FileResult{linter.File(stdinName, string(src))}, nil
	}

	roots := opts.Paths
	if len(roots) == 0 {
		roots = []string{"."}
	}
	files, err := discover.Files(roots, cfg.Files.Include, cfg.Files.Exclude)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered", "files", len(files))

	return lintFiles(ctx, files, opts.Jobs, linter, logger)
}

// lintFiles lints files in parallel. Results keep the order of files.
func lintFiles(ctx context.Context, files []string, jobs int, linter *lint.Linter, logger *log.Logger) ([]*lint.FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own index.
	results := make([]*lint.FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := readSource(path)
			if err != nil {
				return err
			}
			results[i] = linter.File(path, src)
			logger.Debug("scanned", "path", path, "classes", len(results[i].Groups))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

var errNotUTF8 = errors.New("not valid UTF-8")

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, errNotUTF8)
	}
	return string(data), nil
}
