package fisika

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fisika/unit"
)

var (
	// ErrUnknownUnit is returned when a unit name matches no unit of any
	// quantity the Converter knows.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnknownQuantity is returned when a quantity name matches no catalogue
	// entry.
	ErrUnknownQuantity = errors.New("unknown quantity")

	// ErrInvalidValue is returned when text is not "<magnitude> <unit>".
	ErrInvalidValue = errors.New("invalid value")
)

// ErrIncompatibleUnits indicates a conversion between units of different
// quantities, such as metres to seconds.
type ErrIncompatibleUnits struct {
	From         string
	To           string
	FromQuantity string
	ToQuantity   string
}

func (e *ErrIncompatibleUnits) Error() string {
	return fmt.Sprintf("incompatible units: %q (%s) and %q (%s)", e.From, e.FromQuantity, e.To, e.ToQuantity)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, unit.ErrUnknown) {
		return fmt.Errorf("%w: %w", ErrUnknownUnit, err)
	}
	if errors.Is(err, unit.ErrInvalidValue) {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return err
}
