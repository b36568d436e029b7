package translate

import (
	"errors"
	"fmt"

	"github.com/nvinuesa/opmigrate/internal/model"
)

// ValidationError indicates that a required source field is missing or
// malformed. The item cannot be translated and should be skipped.
type ValidationError struct {
	Item   string // item name, may be empty when raised by a normalizer
	Field  string // source field path, e.g. "login.password"
	Reason string // what was wrong
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid field %q", e.Field)
	if e.Item != "" {
		msg = fmt.Sprintf("item %q: %s", e.Item, msg)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// UnsupportedTypeError indicates a source item kind outside the
// supported set. The item cannot be translated and should be skipped.
type UnsupportedTypeError struct {
	Kind model.ItemKind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("item type %d is not supported", int(e.Kind))
}

// IsValidation returns true if the error is a validation error.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsUnsupportedType returns true if the error is an unsupported type error.
func IsUnsupportedType(err error) bool {
	var uErr *UnsupportedTypeError
	return errors.As(err, &uErr)
}
