// Package shell runs the external typesetting tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ToolRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner that forwards tool output to logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes argv in dir and waits for it to exit.
// Standard output is logged as info lines, standard error as warnings.
func (r *Runner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return domain.ErrEmptyCommand
	}

	name, err := resolveExecutable(argv[0])
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve executable"), "command", argv[0])
	}

	cmd := exec.CommandContext(ctx, name, argv[1:]...) //nolint:gosec // commands come from the user's config
	cmd.Args[0] = argv[0]
	cmd.Dir = dir

	stdout := &logWriter{logger: r.logger, level: "info"}
	stderr := &logWriter{logger: r.logger, level: "warn"}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	_ = stdout.Close()
	_ = stderr.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrToolFailed.Error()), "exit_code", exitCode),
			"command", strings.Join(argv, " "),
		)
	}

	return nil
}

// resolveExecutable makes relative paths such as ./bin/pdflatex independent of
// the working directory the tool runs in. Bare names are left to PATH lookup.
func resolveExecutable(name string) (string, error) {
	if filepath.IsAbs(name) || !strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}
	return filepath.Abs(name)
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
