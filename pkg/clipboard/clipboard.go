// Package clipboard reads and writes the system clipboard by piping UTF-8
// text through OS-specific external programs: xsel or xclip on Linux,
// pbpaste/pbcopy on macOS, and the PowerShell clipboard cmdlets on Windows.
// The platform is resolved once; all calls delegate to the single bound
// command pair.
package clipboard

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"clipctl/pkg/errors"
)

// OperatingSystem identifies the host platform. Values mirror runtime.GOOS.
type OperatingSystem string

const (
	Windows OperatingSystem = "windows"
	Linux   OperatingSystem = "linux"
	Darwin  OperatingSystem = "darwin"
	FreeBSD OperatingSystem = "freebsd"
	NetBSD  OperatingSystem = "netbsd"
	AIX     OperatingSystem = "aix"
	Solaris OperatingSystem = "solaris"
	Illumos OperatingSystem = "illumos"
)

// Current returns the platform the process is running on.
func Current() OperatingSystem {
	return OperatingSystem(runtime.GOOS)
}

// SupportedSystems lists the platforms with a registry entry.
func SupportedSystems() []OperatingSystem {
	return []OperatingSystem{Linux, Darwin, Windows}
}

// CommandSpec is an executable name followed by its arguments.
type CommandSpec []string

func (c CommandSpec) String() string {
	return strings.Join(c, " ")
}

// Entry binds the read/write command pair for one platform, with an optional
// transform applied to text after reading.
type Entry struct {
	Read     CommandSpec
	Write    CommandSpec
	PostRead func(string) string
}

// Clipboard is bound to exactly one platform entry for its whole lifetime.
type Clipboard struct {
	os    OperatingSystem
	entry Entry
}

// Option adjusts how the command registry is built.
type Option func(*options)

type options struct {
	linuxTool string
	read      CommandSpec
	write     CommandSpec
	exists    probeFunc
}

// WithLinuxTool forces the Linux utility ("xsel" or "xclip") instead of
// probing for one.
func WithLinuxTool(tool string) Option {
	return func(o *options) {
		o.linuxTool = tool
	}
}

// WithCommands replaces the built-in command pair entirely. Both specs must
// be non-empty.
func WithCommands(read, write CommandSpec) Option {
	return func(o *options) {
		o.read = read
		o.write = write
	}
}

// New binds the current platform to its registry entry.
func New(opts ...Option) (*Clipboard, error) {
	return NewForOS(Current(), opts...)
}

// NewForOS binds the given platform to its registry entry. Platforms without
// an entry fail construction; a full command override (WithCommands) takes
// precedence over the registry and works on any platform.
func NewForOS(osName OperatingSystem, opts ...Option) (*Clipboard, error) {
	o := &options{exists: CommandExists}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.read) > 0 || len(o.write) > 0 {
		if len(o.read) == 0 || len(o.write) == 0 {
			return nil, errors.ValidationError("clipboard command override requires both a read and a write command")
		}
		return &Clipboard{os: osName, entry: Entry{Read: o.read, Write: o.write}}, nil
	}

	entry, ok := buildRegistry(o)[osName]
	if !ok {
		return nil, errors.UnsupportedOSError(string(osName))
	}
	return &Clipboard{os: osName, entry: entry}, nil
}

// OS returns the platform the clipboard is bound to.
func (c *Clipboard) OS() OperatingSystem {
	return c.os
}

// Entry returns the bound command pair.
func (c *Clipboard) Entry() Entry {
	return c.entry
}

// ReadText returns the current clipboard contents.
func (c *Clipboard) ReadText(ctx context.Context) (string, error) {
	return readText(ctx, c.entry)
}

// WriteText replaces the clipboard contents.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return writeText(ctx, c.entry, text)
}

var (
	initOnce         sync.Once
	defaultClipboard *Clipboard
	defaultErr       error
)

// Init resolves the current platform exactly once. The process entry point
// calls it before any clipboard operation is reachable; an unsupported
// platform is not fatal there, but every later call returns the error.
func Init(opts ...Option) error {
	initOnce.Do(func() {
		defaultClipboard, defaultErr = New(opts...)
	})
	return defaultErr
}

// ReadText reads from the process-wide clipboard binding.
func ReadText(ctx context.Context) (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return defaultClipboard.ReadText(ctx)
}

// WriteText writes through the process-wide clipboard binding.
func WriteText(ctx context.Context, text string) error {
	if err := Init(); err != nil {
		return err
	}
	return defaultClipboard.WriteText(ctx, text)
}
