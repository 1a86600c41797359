package process

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestRunner_Success(t *testing.T) {
	requireBinary(t, "sh")

	runner := NewRunner(zaptest.NewLogger(t))

	out, err := runner.Run(context.Background(), t.TempDir(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Expected output 'hello', got %q", out)
	}
}

func TestRunner_WorkingDirectory(t *testing.T) {
	requireBinary(t, "sh")

	dir := t.TempDir()
	runner := NewRunner(zaptest.NewLogger(t))

	out, err := runner.Run(context.Background(), dir, "sh", "-c", "pwd")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.HasSuffix(strings.TrimSpace(out), strings.TrimPrefix(dir, "/private")) {
		t.Errorf("Expected command to run in %s, got %q", dir, out)
	}
}

func TestRunner_NonZeroExit(t *testing.T) {
	requireBinary(t, "sh")

	runner := NewRunner(zaptest.NewLogger(t))

	_, err := runner.Run(context.Background(), "", "sh", "-c", "echo out; echo err >&2; exit 3")
	if !errors.Is(err, ErrNonZeroExit) {
		t.Fatalf("Expected ErrNonZeroExit, got %v", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, "err") || !strings.Contains(msg, "out") {
		t.Errorf("Expected both streams in error, got %q", msg)
	}

	if strings.Index(msg, "err") > strings.Index(msg, "out") {
		t.Errorf("Expected stderr before stdout, got %q", msg)
	}
}

func TestRunner_LaunchFailure(t *testing.T) {
	runner := NewRunner(zaptest.NewLogger(t))

	_, err := runner.Run(context.Background(), "", "definitely-not-a-real-binary-7f3a")
	if !errors.Is(err, ErrLaunchFailed) {
		t.Fatalf("Expected ErrLaunchFailed, got %v", err)
	}
}
