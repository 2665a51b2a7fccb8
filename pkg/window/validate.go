package window

import (
	"math"

	"github.com/matzehuels/casement/pkg/errors"
)

// Validate checks the fields a quotation cannot be priced without. Height,
// Width and Rate must be positive finite numbers and Quantity at least one.
// The returned error names the failing JSON field ([errors.FieldOf]).
// Catalogue membership is not checked; see [WindowSpecs.ValidateCatalogue].
func (s WindowSpecs) Validate() error {
	if err := validatePositive("height", s.Height, errors.ErrCodeInvalidDimension); err != nil {
		return err
	}
	if err := validatePositive("width", s.Width, errors.ErrCodeInvalidDimension); err != nil {
		return err
	}
	if err := validatePositive("rate", s.Rate, errors.ErrCodeInvalidRate); err != nil {
		return err
	}
	if s.Quantity < 1 {
		return errors.Invalid(errors.ErrCodeInvalidQuantity, "quantity", "quantity must be at least 1, got %d", s.Quantity)
	}
	if s.WindowType != "" && !ValidWindowTypes[s.WindowType] {
		return errors.Invalid(errors.ErrCodeInvalidInput, "windowType", "invalid window type: %q (must be Normal or Slider)", s.WindowType)
	}
	return nil
}

// ValidateCatalogue checks that the picker fields hold catalogued values.
// Surfaces that offer free entry (spec files, HTTP) skip it; the terminal
// form and the CLI flags use it to catch typos.
func (s WindowSpecs) ValidateCatalogue() error {
	if !ValidProfiles[s.ProfileSystem] {
		return errors.Invalid(errors.ErrCodeInvalidInput, "profileSystem", "unknown profile system: %q", s.ProfileSystem)
	}
	if !ValidDesigns[s.Design] {
		return errors.Invalid(errors.ErrCodeInvalidInput, "design", "unknown design: %q", s.Design)
	}
	if !ValidLockingTypes[s.LockingType] {
		return errors.Invalid(errors.ErrCodeInvalidInput, "lockingType", "unknown locking type: %q", s.LockingType)
	}
	return nil
}

func validatePositive(field string, v float64, code errors.Code) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Invalid(code, field, "%s must be a finite number, got %v", field, v)
	}
	if v <= 0 {
		return errors.Invalid(code, field, "%s must be positive, got %v", field, v)
	}
	return nil
}
