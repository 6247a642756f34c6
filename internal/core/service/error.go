package service

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a required argument is missing.
	// No collaborator is called before this check.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAllocationFailed is returned when no free identifier could be found
	// within the retry budget.
	ErrAllocationFailed = errors.New("could not generate a non-existing identifier")

	// ErrUnprocessable is returned when a record could not be written: the
	// identifier allocation failed, the store rejected the write, or the
	// store returned no record.
	ErrUnprocessable = errors.New("unprocessable")
)

func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func unprocessable(cause error) error {
	return fmt.Errorf("%w: %w", ErrUnprocessable, cause)
}
