package errors

import (
	"fmt"
	"os"
	"strings"

	"clipctl/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess        ExitCode = 0
	ExitCodeGeneral        ExitCode = 1
	ExitCodeConfig         ExitCode = 2
	ExitCodeUnsupportedOS  ExitCode = 3
	ExitCodeClipboardRead  ExitCode = 4
	ExitCodeClipboardWrite ExitCode = 5
	ExitCodeValidation     ExitCode = 6
	ExitCodeFileOperation  ExitCode = 7
)

// Standardized error messages for consistent user-facing errors
const (
	ErrMsgReadFailed  = "Failed to read from clipboard"
	ErrMsgWriteFailed = "Failed to write to clipboard"
	ErrMsgConfigLoad  = "Failed to load configuration"
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn processes an error and returns the appropriate exit code.
// It does not call os.Exit - the caller is responsible for exiting the
// program. This makes it suitable for use in library code.
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)

	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		// Handle multi-line suggestions
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(os.Stderr, line)
			} else {
				if strings.HasPrefix(line, "  -") {
					cyan.Fprintln(os.Stderr, line)
				} else {
					fmt.Fprintln(os.Stderr, "           "+line)
				}
			}
		}
	}

	fmt.Fprintln(os.Stderr)

	return exitCode
}

func UnsupportedOSError(osName string) *Error {
	return &Error{
		Code:       ExitCodeUnsupportedOS,
		Message:    fmt.Sprintf("Unsupported operating system: %s", osName),
		Suggestion: "Clipboard access is available on linux, darwin and windows only.",
	}
}

func ReadError(err error) *Error {
	return &Error{
		Code:       ExitCodeClipboardRead,
		Message:    ErrMsgReadFailed,
		Underlying: err,
	}
}

func WriteError(err error) *Error {
	return &Error{
		Code:       ExitCodeClipboardWrite,
		Message:    ErrMsgWriteFailed,
		Underlying: err,
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or run 'clipctl config init' to create one.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func MissingUtilityError(utility string) *Error {
	return &Error{
		Code:       ExitCodeValidation,
		Message:    fmt.Sprintf("Command '%s' not found on PATH", utility),
		Suggestion: "Install it with your system package manager.",
	}
}
