package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativePrice  = errors.New("negative price")
	ErrNonFinitePrice = errors.New("non-finite price")
)

// PriceSeries holds one price per day. The index is the day offset from 0.
type PriceSeries []float64

// Validate returns an error for the first price that is not a finite
// non-negative number. Scoring never calls it; callers opt in.
func (s PriceSeries) Validate() error {
	for day, p := range s {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("day %d: %w", day, ErrNonFinitePrice)
		}
		if p < 0 {
			return fmt.Errorf("day %d: %w (%.2f)", day, ErrNegativePrice, p)
		}
	}
	return nil
}
