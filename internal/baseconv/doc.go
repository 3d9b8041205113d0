// Package baseconv renders signed integers in binary and hexadecimal using
// sign-magnitude notation: a leading "-" for negative values followed by the
// digits of the absolute value.
package baseconv
