package cli

import "errors"

// Exit codes for scrub.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNoMatches indicates a search completed without matches.
	ExitNoMatches = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates ruleset file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrNoMatches signals that a find command matched nothing. It carries no
// message worth logging; it exists to select the exit code.
var ErrNoMatches = errors.New("no matches")

// configError wraps ruleset and flag resolution failures.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// ioError wraps input reading failures.
type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	var cfg *configError
	var io *ioError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoMatches):
		return ExitNoMatches
	case errors.As(err, &cfg):
		return ExitConfigError
	case errors.As(err, &io):
		return ExitIOError
	default:
		return ExitInvalidUsage
	}
}
