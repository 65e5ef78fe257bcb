package models

import (
	"errors"
	"fmt"
)

// Validation failures are rejected synchronously and never move the run
// status to ERROR.
var (
	ErrNoPrimary   = errors.New("no primary instrument selected")
	ErrNoSecondary = errors.New("comparison mode requires a secondary instrument")
	ErrRunActive   = errors.New("an analysis run is already in progress")
)

// ErrNotFound means the addressed entry does not exist in its collection.
var ErrNotFound = errors.New("entry not found")

// ErrMissingCredential means no usable credential was available, either
// before the run started or discovered mid-flight. It prompts the user for a
// key and never marks the run as ERROR.
var ErrMissingCredential = errors.New("missing inference credential")

// TransportError is a network or upstream-service failure during the
// exchange with the inference service. It marks the run as ERROR.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is one of the synchronous precondition
// failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoPrimary) ||
		errors.Is(err, ErrNoSecondary) ||
		errors.Is(err, ErrRunActive)
}
