package formulas

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SeriesSummary holds descriptive statistics for one series
type SeriesSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Summarize computes descriptive statistics for a series
func Summarize(data []float64) SeriesSummary {
	if len(data) == 0 {
		return SeriesSummary{}
	}

	return SeriesSummary{
		Mean:   Mean(data),
		StdDev: StdDev(data),
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		Count:  len(data),
	}
}
