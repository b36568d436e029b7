package proc

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrCommandFailed(t *testing.T) {
	underlying := errors.New("exit status 1")

	t.Run("With stderr", func(t *testing.T) {
		err := &ErrCommandFailed{
			Command: "bw",
			Args:    []string{"list", "items"},
			Stderr:  "You are not logged in.",
			Err:     underlying,
		}
		msg := err.Error()
		if !strings.Contains(msg, "bw list items") {
			t.Errorf("Error() = %q, missing command line", msg)
		}
		if !strings.Contains(msg, "You are not logged in.") {
			t.Errorf("Error() = %q, missing stderr", msg)
		}
	})

	t.Run("Without stderr", func(t *testing.T) {
		err := &ErrCommandFailed{Command: "op", Err: underlying}
		if !strings.Contains(err.Error(), "exit status 1") {
			t.Errorf("Error() = %q, missing underlying error", err.Error())
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		err := &ErrCommandFailed{Command: "op", Err: underlying}
		if !errors.Is(err, underlying) {
			t.Error("errors.Is() should see the underlying error")
		}
	})
}

func TestIsCommandFailed(t *testing.T) {
	cmdErr := &ErrCommandFailed{Command: "bw"}
	if !IsCommandFailed(cmdErr) {
		t.Error("IsCommandFailed(ErrCommandFailed) = false")
	}
	if !IsCommandFailed(fmt.Errorf("wrap: %w", cmdErr)) {
		t.Error("IsCommandFailed(wrapped) = false")
	}
	if IsCommandFailed(errors.New("other")) {
		t.Error("IsCommandFailed(generic) = true")
	}
}
