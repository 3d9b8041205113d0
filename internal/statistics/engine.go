package statistics

import (
	stderrors "errors"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"txtcli/pkg/contracts/domain"
)

// ErrEmptySeries is returned by Compute for a series without values
var ErrEmptySeries = stderrors.New("empty series")

// Compute derives the statistics record of a non-empty series.
// The series is not modified. File and Elapsed are left for the caller.
func Compute(series []float64) (domain.StatisticsRecord, error) {
	if len(series) == 0 {
		return domain.StatisticsRecord{}, ErrEmptySeries
	}

	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	mean := Mean(series)
	variance := rawVariance(series, mean)

	return domain.StatisticsRecord{
		Count:             len(series),
		NonZeroCount:      NonZeroCount(series),
		Mean:              mean,
		Median:            medianSorted(sorted),
		Mode:              modeSorted(sorted),
		Variance:          Round2(variance),
		StandardDeviation: Round2(math.Sqrt(variance)),
	}, nil
}

// roundLimit is the magnitude from which a float64 has no hundredths left
const roundLimit = 1e15

// Round2 rounds x to two decimals, halves away from zero. Values too large
// to carry hundredths, infinities and NaN are returned unchanged.
func Round2(x float64) float64 {
	if math.Abs(x) >= roundLimit || math.IsNaN(x) {
		return x
	}
	return math.Round(x*100) / 100
}

// NonZeroCount counts the elements that are not exactly zero
func NonZeroCount(series []float64) int {
	n := 0
	for _, v := range series {
		if v != 0 {
			n++
		}
	}
	return n
}

// Mean returns the arithmetic mean rounded to two decimals
func Mean(series []float64) float64 {
	return Round2(stats.Mean(series))
}

// Median returns the middle value of the sorted series, or the mean of the
// two middle values when the length is even. It is not rounded.
func Median(series []float64) float64 {
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)
	return medianSorted(sorted)
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mode returns the most frequent value; among equally frequent values the
// smallest one wins.
func Mode(series []float64) float64 {
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)
	return modeSorted(sorted)
}

func modeSorted(sorted []float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}

	best, bestRun := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		// strictly greater keeps the smaller value on ties
		if j-i > bestRun {
			best, bestRun = sorted[i], j-i
		}
		i = j
	}
	return best
}

// Variance returns the population variance around the rounded mean,
// rounded to two decimals.
func Variance(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return Round2(rawVariance(series, Mean(series)))
}

// StdDev returns the square root of the unrounded variance around the
// rounded mean, rounded to two decimals.
func StdDev(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return Round2(math.Sqrt(rawVariance(series, Mean(series))))
}

func rawVariance(series []float64, mean float64) float64 {
	var sum float64
	for _, v := range series {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(series))
}
