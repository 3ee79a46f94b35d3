package clipboard

import "strings"

const (
	xsel       = "xsel"
	xclip      = "xclip"
	pbpaste    = "pbpaste"
	pbcopy     = "pbcopy"
	powershell = "powershell"
)

// Both Linux utilities must target the CLIPBOARD selection, never PRIMARY,
// so the fallback behaves identically to the preferred tool.
var (
	xselReadArgs  = CommandSpec{xsel, "--output", "--clipboard"}
	xselWriteArgs = CommandSpec{xsel, "--input", "--clipboard"}

	xclipReadArgs  = CommandSpec{xclip, "-out", "-selection", "clipboard"}
	xclipWriteArgs = CommandSpec{xclip, "-in", "-selection", "clipboard"}

	powershellReadArgs  = CommandSpec{powershell, "-NoProfile", "-Command", "Get-Clipboard"}
	powershellWriteArgs = CommandSpec{powershell, "-NoProfile", "-Command", "Set-Clipboard"}
)

type probeFunc func(string) bool

// buildRegistry maps each supported platform to its command pair. Platforms
// missing from the map are unsupported on purpose.
func buildRegistry(o *options) map[OperatingSystem]Entry {
	return map[OperatingSystem]Entry{
		Linux:  linuxEntry(o),
		Darwin: {Read: CommandSpec{pbpaste}, Write: CommandSpec{pbcopy}},
		Windows: {
			Read:     powershellReadArgs,
			Write:    powershellWriteArgs,
			PostRead: stripWindowsLineEndings,
		},
	}
}

// linuxEntry prefers xsel and falls back to xclip, which is more commonly
// preinstalled. The probe is advisory: when neither utility is installed the
// xclip entry is still registered and the failure surfaces at spawn time.
func linuxEntry(o *options) Entry {
	switch o.linuxTool {
	case xsel:
		return Entry{Read: xselReadArgs, Write: xselWriteArgs}
	case xclip:
		return Entry{Read: xclipReadArgs, Write: xclipWriteArgs}
	}
	if o.exists(xsel) {
		return Entry{Read: xselReadArgs, Write: xselWriteArgs}
	}
	return Entry{Read: xclipReadArgs, Write: xclipWriteArgs}
}

// stripWindowsLineEndings drops the carriage returns and the single trailing
// newline that Get-Clipboard appends to its output.
func stripWindowsLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSuffix(s, "\n")
}

// KnownUtilities lists every external program the registry can invoke.
func KnownUtilities() []string {
	return []string{xsel, xclip, pbpaste, pbcopy, powershell}
}
