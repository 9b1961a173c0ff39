// Package repository holds the queries and mutations behind the venue, artist
// and show pages. Errors returned from this package can be classified with
// KindOf so handlers can tell a missing row from bad input or a rejected
// reference.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested venue or artist does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when submitted values cannot be stored as given.
var ErrValidation = errors.New("validation failed")

// ErrConstraint is returned when the database rejects a write, typically a
// show pointing at an artist or venue that does not exist.
var ErrConstraint = errors.New("constraint violation")

// Kind is the category KindOf assigns to an error returned by this package.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindValidation
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failed"
	case KindConstraint:
		return "constraint_violation"
	default:
		return "unexpected"
	}
}

// KindOf classifies err. Translated gorm errors are folded into the
// matching kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnexpected
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConstraint),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return KindConstraint
	default:
		return KindUnexpected
	}
}

// Invalid wraps ErrValidation with a user-readable reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
