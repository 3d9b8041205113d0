// Package statistics computes descriptive statistics over a series of
// float64 values: count, non-zero count, mean, median, mode, population
// variance and standard deviation.
//
// The mean is rounded to two decimals, halves away from zero, before the
// variance is taken around it. The variance is reported rounded and the
// standard deviation is the square root of the unrounded variance, rounded.
// Values too large to carry hundredths pass through Round2 unchanged.
//
// The median is not rounded. When several values share the highest count
// the mode is the smallest of them.
package statistics
