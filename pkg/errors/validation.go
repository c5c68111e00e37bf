package errors

// ValidatePositive returns an INVALID_INPUT error when v is not strictly
// positive. The name identifies the offending parameter in the message.
func ValidatePositive(name string, v float64) error {
	if !(v > 0) {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative returns an INVALID_INPUT error when v is negative.
// NaN is rejected as well: a NaN parameter would otherwise poison every
// downstream computation without tripping a comparison.
func ValidateNonNegative(name string, v float64) error {
	if !(v >= 0) {
		return New(ErrCodeInvalidInput, "%s must be non-negative, got %g", name, v)
	}
	return nil
}

// ValidateInOpenInterval returns an INVALID_INPUT error when v does not lie
// strictly between lo and hi.
func ValidateInOpenInterval(name string, v, lo, hi float64) error {
	if !(v > lo && v < hi) {
		return New(ErrCodeInvalidInput, "%s must lie in (%g, %g), got %g", name, lo, hi, v)
	}
	return nil
}
