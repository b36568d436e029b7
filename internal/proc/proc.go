// Package proc runs external command-line tools and captures their output.
package proc

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

// Exec runs commands with os/exec. It is the production Runner used by
// the bw and op clients; tests substitute a fake.
type Exec struct{}

// Run executes name with args, feeding stdin when non-nil and appending
// extraEnv to the inherited environment. It returns the captured stdout.
// A non-zero exit is reported as an *ErrCommandFailed carrying the
// trimmed stderr output.
func (Exec) Run(ctx context.Context, stdin []byte, extraEnv []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &ErrCommandFailed{
			Command: name,
			Args:    args,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	return stdout.Bytes(), nil
}
