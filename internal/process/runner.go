package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner executes external commands and captures their output.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes name with args in dir and blocks until it exits.
// An empty dir means the current working directory.
//
// On success the captured stdout is returned. A non-zero exit yields an error
// wrapping ErrNonZeroExit whose text is the captured stderr followed by stdout;
// a command that cannot be started yields an error wrapping ErrLaunchFailed.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	// arguments may carry credentials
	r.logger.Debug("running command",
		zap.String("name", name),
		zap.Int("args", len(args)),
		zap.String("dir", dir))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		r.logger.Error("failed to start command", zap.String("name", name), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", ErrLaunchFailed, name, err)
	}

	output := combine(stderr.String(), stdout.String())
	if output == "" {
		output = exitErr.Error()
	}

	r.logger.Warn("command exited with error",
		zap.String("name", name),
		zap.Int("exit_code", exitErr.ExitCode()))

	return "", fmt.Errorf("%w: %s", ErrNonZeroExit, output)
}

func combine(parts ...string) string {
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return strings.Join(out, "\n")
}
