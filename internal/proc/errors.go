package proc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommandFailed indicates an external command exited non-zero or
// could not be started.
type ErrCommandFailed struct {
	Command string   // binary name
	Args    []string // arguments passed to the command
	Stderr  string   // trimmed stderr output, if any
	Err     error    // underlying error
}

func (e *ErrCommandFailed) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Command+" "+strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrCommandFailed) Unwrap() error {
	return e.Err
}

// IsCommandFailed returns true if the error is a command failure.
func IsCommandFailed(err error) bool {
	var cmdErr *ErrCommandFailed
	return errors.As(err, &cmdErr)
}
