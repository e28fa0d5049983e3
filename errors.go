package relief

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for the relief package.
var (
	// ErrNilPixmap is returned when a required pixmap is nil.
	ErrNilPixmap = errors.New("relief: nil pixmap")

	// ErrSizeMismatch is returned when base and mask dimensions differ.
	// The concrete error is a *SizeMismatchError.
	ErrSizeMismatch = errors.New("relief: base and mask sizes differ")

	// ErrInvalidConfig is returned when a configuration value is not finite.
	ErrInvalidConfig = errors.New("relief: invalid config")
)

// SizeMismatchError is returned when the base and mask buffers do not have
// the same dimensions. It matches ErrSizeMismatch with errors.Is.
type SizeMismatchError struct {
	Base image.Point
	Mask image.Point
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("relief: base is %dx%d but mask is %dx%d", e.Base.X, e.Base.Y, e.Mask.X, e.Mask.Y)
}

// Is reports whether target is ErrSizeMismatch.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// invalidConfig wraps ErrInvalidConfig with the offending field.
func invalidConfig(field string, value any) error {
	return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, field, value)
}
