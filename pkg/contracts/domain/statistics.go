package domain

import "time"

// StatisticsRecord holds the descriptive statistics of one input file.
//
// Mean, Variance and StandardDeviation are rounded to two decimals;
// Variance and StandardDeviation are computed from the rounded mean.
// Median and Mode are not rounded. Count is always at least 1.
type StatisticsRecord struct {
	File              string        `json:"file"`
	Count             int           `json:"count"`
	NonZeroCount      int           `json:"non_zero_count"`
	Mean              float64       `json:"mean"`
	Median            float64       `json:"median"`
	Mode              float64       `json:"mode"`
	Variance          float64       `json:"variance"`
	StandardDeviation float64       `json:"standard_deviation"`
	Elapsed           time.Duration `json:"elapsed"`
}

// StatisticsColumns are the column headers of the statistics report
var StatisticsColumns = []string{
	"File", "Count", "Non-Zero Count", "Mean", "Median",
	"Mode", "Variance", "Standard Deviation", "Elapsed Time",
}
