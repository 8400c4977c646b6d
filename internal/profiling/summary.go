// Package profiling computes descriptive statistics for samples of generated
// values, used to sanity-check that a generator's output matches its nominal
// distribution.
package profiling

import (
	"github.com/montanaflynn/stats"
)

// Summary holds the descriptive statistics of a sample.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q25    float64
	Q75    float64
}

// Describe computes summary statistics for a sample. It fails on an empty
// sample.
func Describe(sample []float64) (Summary, error) {
	s := Summary{Count: len(sample)}

	mean, err := stats.Mean(sample)
	if err != nil {
		return s, err
	}
	stdDev, err := stats.StandardDeviation(sample)
	if err != nil {
		return s, err
	}
	min, err := stats.Min(sample)
	if err != nil {
		return s, err
	}
	max, err := stats.Max(sample)
	if err != nil {
		return s, err
	}
	median, err := stats.Median(sample)
	if err != nil {
		return s, err
	}
	q25, err := stats.Percentile(sample, 25)
	if err != nil {
		return s, err
	}
	q75, err := stats.Percentile(sample, 75)
	if err != nil {
		return s, err
	}

	s.Mean = mean
	s.StdDev = stdDev
	s.Min = min
	s.Max = max
	s.Median = median
	s.Q25 = q25
	s.Q75 = q75
	return s, nil
}
