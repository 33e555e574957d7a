package calculator

import (
	"errors"
	"math"
)

// Mean returns the arithmetic mean of prices, or 0 for an empty slice.
func Mean(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	return sum / float64(len(prices))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// A series of fewer than two prices has no spread and returns 0.
func SampleStdDev(prices []float64) float64 {
	n := len(prices)
	if n <= 1 {
		return 0
	}
	avg := Mean(prices)
	var sumSquares float64
	for _, p := range prices {
		diff := p - avg
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(n-1))
}

// MinMax scans prices once and returns the lowest and highest price with the
// day of their first occurrence.
func MinMax(prices []float64) (low float64, lowDay int, high float64, highDay int, err error) {
	if len(prices) == 0 {
		return 0, 0, 0, 0, errors.New("no prices provided")
	}
	low, high = prices[0], prices[0]
	for i := 1; i < len(prices); i++ {
		if prices[i] < low {
			low = prices[i]
			lowDay = i
		}
		if prices[i] > high {
			high = prices[i]
			highDay = i
		}
	}
	return low, lowDay, high, highDay, nil
}
