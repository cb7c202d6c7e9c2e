package cli

import "fmt"

// Exit codes returned by the pagebar binary.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCodeError carries a specific process exit code for an error.
// The main package extracts it with errors.As.
type ExitCodeError struct {
	ExitCode int
	Err      error
}

// Error implements error.
func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.ExitCode)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// usageError marks err as a usage mistake.
func usageError(err error) error {
	return &ExitCodeError{ExitCode: ExitUsage, Err: err}
}
