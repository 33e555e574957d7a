package strategy

import (
	"errors"

	"BookingAdvisor/internal/calculator"
)

// Params holds the weights and thresholds of the booking score.
type Params struct {
	PriceWeight float64
	TrendWeight float64
	RiskWeight  float64

	// TimePenalty is the penalty reached on the last day; it grows linearly from 0.
	TimePenalty float64

	// A day within the first EarlyDays priced at or below
	// avg - ThresholdStdMultiplier*std wins outright.
	ThresholdStdMultiplier float64
	EarlyDays              int

	MaxTrendWindow int
}

// DefaultParams returns the standard booking heuristic.
func DefaultParams() Params {
	return Params{
		PriceWeight:            0.5,
		TrendWeight:            0.2,
		RiskWeight:             0.2,
		TimePenalty:            0.3,
		ThresholdStdMultiplier: 1.5,
		EarlyDays:              10,
		MaxTrendWindow:         calculator.DefaultMaxTrendWindow,
	}
}

// Validate checks that the parameters describe a usable score.
func (p Params) Validate() error {
	if p.PriceWeight < 0 || p.TrendWeight < 0 || p.RiskWeight < 0 {
		return errors.New("factor weights must not be negative")
	}
	if p.TimePenalty < 0 {
		return errors.New("time penalty must not be negative")
	}
	if p.ThresholdStdMultiplier < 0 {
		return errors.New("threshold multiplier must not be negative")
	}
	if p.EarlyDays < 0 {
		return errors.New("early days must not be negative")
	}
	if p.MaxTrendWindow < 1 {
		return errors.New("max trend window must be at least 1")
	}
	return nil
}
