// Package numeric turns raw input lines into numbers.
//
// Only plain decimal notation is accepted: an optional sign, digits and, for
// floats, a fraction and exponent. Every rejection is a LINE_UNPARSEABLE
// *errors.AppError wrapping one of ErrEmpty, ErrInvalid, ErrNonFinite or
// ErrOutOfRange.
package numeric
