package terminal

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrNotATerminal is returned by Begin when the input stream is not a terminal
	ErrNotATerminal = errors.New("not a terminal")

	// ErrNotInitialized is returned by reads and writes outside Begin/End
	ErrNotInitialized = errors.New("terminal session not initialized")

	// ErrAlreadyBegun is returned by a second Begin on the same session
	ErrAlreadyBegun = errors.New("terminal session already begun")

	// ErrCapabilityQuery is returned when the color count cannot be determined
	ErrCapabilityQuery = errors.New("terminal capability query failed")

	// ErrPlatformNotSupported is returned by the binding on platforms without termios
	ErrPlatformNotSupported = errors.New("platform not supported")
)

// OSCallError reports a failed terminal system call
type OSCallError struct {
	Op   string // e.g. "tcgetattr", "tcsetattr", "ioctl(TIOCGWINSZ)"
	Code int    // errno when available, -1 otherwise
	Err  error
}

func (e *OSCallError) Error() string {
	return fmt.Sprintf("%s failed with code %d: %v", e.Op, e.Code, e.Err)
}

func (e *OSCallError) Unwrap() error {
	return e.Err
}

// osCallError wraps err with the operation name and errno
func osCallError(op string, err error) error {
	code := -1
	var errno syscall.Errno
	if errors.As(err, &errno) {
		code = int(errno)
	}
	return &OSCallError{Op: op, Code: code, Err: err}
}
