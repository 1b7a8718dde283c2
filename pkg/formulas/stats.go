package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// PercentileRank returns the percentile standing (0-100) of value within data.
// Equal values count half, so the only element of a dataset ranks 50 rather
// than 0 or 100. An empty dataset yields the neutral 50.
func PercentileRank(data []float64, value float64) float64 {
	if len(data) == 0 {
		return 50
	}

	below, equal := 0, 0
	for _, d := range data {
		switch {
		case d < value:
			below++
		case d == value:
			equal++
		}
	}

	return (float64(below) + 0.5*float64(equal)) / float64(len(data)) * 100
}
