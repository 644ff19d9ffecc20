package unit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknown is the sentinel behind every ErrUnknownUnit.
	ErrUnknown = errors.New("unknown unit")

	// ErrInvalidValue is the sentinel behind every ErrSyntax.
	ErrInvalidValue = errors.New("invalid value")
)

// ErrUnknownUnit indicates a unit name that no unit of the quantity carries.
type ErrUnknownUnit struct {
	Quantity string
	Name     string
}

func (e *ErrUnknownUnit) Error() string {
	if e.Quantity == "" {
		return fmt.Sprintf("unknown unit %q", e.Name)
	}
	return fmt.Sprintf("unknown %s unit %q", e.Quantity, e.Name)
}

func (e *ErrUnknownUnit) Unwrap() error { return ErrUnknown }

// ErrSyntax indicates text that is not "<magnitude> <unit>".
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSyntax struct {
	Input string
	cause error
}

func (e *ErrSyntax) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid quantity %q: %v", e.Input, e.cause)
	}
	return fmt.Sprintf("invalid quantity %q", e.Input)
}

func (e *ErrSyntax) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidValue}
	}
	return []error{ErrInvalidValue, e.cause}
}

// errDuplicateName is raised while generating a quantity whose name tables
// clash.
type errDuplicateName struct {
	quantity string
	name     string
	first    string
	second   string
}

func (e *errDuplicateName) Error() string {
	return fmt.Sprintf("unit: %s name %q used by both %s and %s", e.quantity, e.name, e.first, e.second)
}
