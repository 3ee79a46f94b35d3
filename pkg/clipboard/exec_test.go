package clipboard

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"clipctl/pkg/errors"
)

// The executor tests pipe through plain POSIX tools instead of real
// clipboard utilities so they run headless.
func requirePOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("executor tests use POSIX tools")
	}
}

func TestReadText_CapturesOutput(t *testing.T) {
	requirePOSIX(t)

	entry := Entry{Read: CommandSpec{"echo", "hello"}}
	got, err := readText(context.Background(), entry)
	if err != nil {
		t.Fatalf("readText() returned error: %v", err)
	}
	if got != "hello\n" {
		t.Errorf("readText() = %q, want %q", got, "hello\n")
	}
}

func TestReadText_AppliesPostRead(t *testing.T) {
	requirePOSIX(t)

	entry := Entry{
		Read:     CommandSpec{"echo", "hello"},
		PostRead: strings.ToUpper,
	}
	got, err := readText(context.Background(), entry)
	if err != nil {
		t.Fatalf("readText() returned error: %v", err)
	}
	if got != "HELLO\n" {
		t.Errorf("readText() = %q, want %q", got, "HELLO\n")
	}
}

func TestReadText_SpawnFailure(t *testing.T) {
	entry := Entry{Read: CommandSpec{"clipctl-no-such-binary-2f71"}}
	_, err := readText(context.Background(), entry)
	if err == nil {
		t.Fatal("readText() succeeded with a nonexistent executable")
	}
	if !errors.IsExitCode(err, errors.ExitCodeClipboardRead) {
		t.Errorf("error code = %v, want ExitCodeClipboardRead", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to read from clipboard: ") {
		t.Errorf("error = %q, want 'Failed to read from clipboard: ...' prefix", err.Error())
	}
}

func TestWriteText_PipesStdin(t *testing.T) {
	requirePOSIX(t)

	entry := Entry{Write: CommandSpec{"cat"}}
	if err := writeText(context.Background(), entry, "hello world"); err != nil {
		t.Fatalf("writeText() returned error: %v", err)
	}
}

func TestWriteText_SpawnFailure(t *testing.T) {
	entry := Entry{Write: CommandSpec{"clipctl-no-such-binary-2f71"}}
	err := writeText(context.Background(), entry, "hello")
	if err == nil {
		t.Fatal("writeText() succeeded with a nonexistent executable")
	}
	if !errors.IsExitCode(err, errors.ExitCodeClipboardWrite) {
		t.Errorf("error code = %v, want ExitCodeClipboardWrite", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to write to clipboard: ") {
		t.Errorf("error = %q, want 'Failed to write to clipboard: ...' prefix", err.Error())
	}
}

func TestWriteText_NonzeroExit(t *testing.T) {
	requirePOSIX(t)

	entry := Entry{Write: CommandSpec{"sh", "-c", "cat >/dev/null; exit 3"}}
	err := writeText(context.Background(), entry, "hello")
	if err == nil {
		t.Fatal("writeText() ignored a nonzero exit status")
	}
	if !errors.IsExitCode(err, errors.ExitCodeClipboardWrite) {
		t.Errorf("error code = %v, want ExitCodeClipboardWrite", err)
	}
}

func TestWriteText_ContextCancellation(t *testing.T) {
	requirePOSIX(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	entry := Entry{Write: CommandSpec{"sleep", "30"}}
	start := time.Now()
	err := writeText(ctx, entry, "hello")
	if err == nil {
		t.Fatal("writeText() returned nil for a command killed by its context")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("writeText() took %v, context deadline was not enforced", elapsed)
	}
}
