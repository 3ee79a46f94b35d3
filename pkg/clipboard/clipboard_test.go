package clipboard

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"clipctl/pkg/errors"
)

func TestNewForOS_Supported(t *testing.T) {
	for _, osName := range SupportedSystems() {
		t.Run(string(osName), func(t *testing.T) {
			cb, err := NewForOS(osName)
			if err != nil {
				t.Fatalf("NewForOS(%s) returned error: %v", osName, err)
			}
			if cb.OS() != osName {
				t.Errorf("OS() = %s, want %s", cb.OS(), osName)
			}
			entry := cb.Entry()
			if len(entry.Read) == 0 {
				t.Errorf("NewForOS(%s) bound an empty read command", osName)
			}
			if len(entry.Write) == 0 {
				t.Errorf("NewForOS(%s) bound an empty write command", osName)
			}
		})
	}
}

func TestNewForOS_Unsupported(t *testing.T) {
	unsupported := []OperatingSystem{FreeBSD, NetBSD, AIX, Solaris, Illumos}

	for _, osName := range unsupported {
		t.Run(string(osName), func(t *testing.T) {
			_, err := NewForOS(osName)
			if err == nil {
				t.Fatalf("NewForOS(%s) succeeded, want unsupported error", osName)
			}
			if !errors.IsExitCode(err, errors.ExitCodeUnsupportedOS) {
				t.Errorf("NewForOS(%s) error code = %v, want ExitCodeUnsupportedOS", osName, err)
			}
			if !strings.Contains(err.Error(), string(osName)) {
				t.Errorf("error %q does not name the OS %q", err.Error(), osName)
			}
		})
	}
}

func TestNewForOS_LinuxToolForced(t *testing.T) {
	tests := []struct {
		name      string
		tool      string
		wantRead  CommandSpec
		wantWrite CommandSpec
	}{
		{
			name:      "forced xsel",
			tool:      "xsel",
			wantRead:  xselReadArgs,
			wantWrite: xselWriteArgs,
		},
		{
			name:      "forced xclip",
			tool:      "xclip",
			wantRead:  xclipReadArgs,
			wantWrite: xclipWriteArgs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := NewForOS(Linux, WithLinuxTool(tt.tool))
			if err != nil {
				t.Fatalf("NewForOS returned error: %v", err)
			}
			entry := cb.Entry()
			if entry.Read.String() != tt.wantRead.String() {
				t.Errorf("read command = %q, want %q", entry.Read, tt.wantRead)
			}
			if entry.Write.String() != tt.wantWrite.String() {
				t.Errorf("write command = %q, want %q", entry.Write, tt.wantWrite)
			}
		})
	}
}

func TestNewForOS_CommandOverride(t *testing.T) {
	read := CommandSpec{"mypaste", "--stdout"}
	write := CommandSpec{"mycopy"}

	cb, err := NewForOS(FreeBSD, WithCommands(read, write))
	if err != nil {
		t.Fatalf("NewForOS with override returned error: %v", err)
	}
	if cb.Entry().Read.String() != read.String() {
		t.Errorf("read command = %q, want %q", cb.Entry().Read, read)
	}
	if cb.Entry().Write.String() != write.String() {
		t.Errorf("write command = %q, want %q", cb.Entry().Write, write)
	}
}

func TestNewForOS_PartialOverrideRejected(t *testing.T) {
	_, err := NewForOS(Linux, WithCommands(CommandSpec{"mypaste"}, nil))
	if err == nil {
		t.Fatal("NewForOS accepted a read-only command override")
	}
	if !errors.IsExitCode(err, errors.ExitCodeValidation) {
		t.Errorf("error code = %v, want ExitCodeValidation", err)
	}
}

func TestCommandSpec_String(t *testing.T) {
	spec := CommandSpec{"xclip", "-out", "-selection", "clipboard"}
	want := "xclip -out -selection clipboard"
	if spec.String() != want {
		t.Errorf("String() = %q, want %q", spec.String(), want)
	}
}

func TestInit_Idempotent(t *testing.T) {
	first := Init()
	second := Init()
	if first != second {
		t.Errorf("Init() returned %v then %v, want identical results", first, second)
	}
}

// Round-trip and race tests need a real clipboard, which CI does not have.
// Enable them with CLIPCTL_TEST_CLIPBOARD=1 on a desktop session.
func requireRealClipboard(t *testing.T) {
	t.Helper()
	if os.Getenv("CLIPCTL_TEST_CLIPBOARD") == "" {
		t.Skip("set CLIPCTL_TEST_CLIPBOARD=1 to run clipboard round-trip tests")
	}
}

func TestRoundTrip(t *testing.T) {
	requireRealClipboard(t)

	cb, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx := context.Background()
	const want = "hello world"
	if err := cb.WriteText(ctx, want); err != nil {
		t.Fatalf("WriteText() returned error: %v", err)
	}
	got, err := cb.ReadText(ctx)
	if err != nil {
		t.Fatalf("ReadText() returned error: %v", err)
	}
	if got != want {
		t.Errorf("ReadText() = %q, want %q", got, want)
	}
}

func TestConcurrentWrites_LastWriterWins(t *testing.T) {
	requireRealClipboard(t)

	cb, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for _, text := range []string{"A", "B"} {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			if err := cb.WriteText(ctx, text); err != nil {
				t.Errorf("WriteText(%q) returned error: %v", text, err)
			}
		}(text)
	}
	wg.Wait()

	got, err := cb.ReadText(ctx)
	if err != nil {
		t.Fatalf("ReadText() returned error: %v", err)
	}
	if got != "A" && got != "B" {
		t.Errorf("ReadText() = %q, want %q or %q", got, "A", "B")
	}
}
