package analyzer

import (
	"BookingAdvisor/internal/calculator"
	"BookingAdvisor/internal/model"
)

// The second half must move more than 5% against the first half to count as a trend.
const (
	risingRatio  = 1.05
	fallingRatio = 0.95
)

// AnalyzePricePatterns summarises a price series. It returns nil for an
// empty series.
func AnalyzePricePatterns(prices model.PriceSeries) *model.AnalysisSummary {
	low, lowDay, high, highDay, err := calculator.MinMax(prices)
	if err != nil {
		return nil
	}

	avg := calculator.Mean(prices)
	summary := &model.AnalysisSummary{
		MinPrice: low,
		MaxPrice: high,
		AvgPrice: avg,
		StdDev:   calculator.SampleStdDev(prices),
		MinDay:   lowDay,
		MaxDay:   highDay,
		Trend:    classifyTrend(prices),
	}
	// all-zero series: no range to speak of
	if avg != 0 {
		summary.PriceVolatility = (high - low) / avg
	}
	return summary
}

// classifyTrend compares the mean of the second half of the series with the
// first. The split point is floor(n/2), so an odd middle day belongs to the
// second half. A series too short to have a first half is stable.
func classifyTrend(prices model.PriceSeries) model.Trend {
	half := len(prices) / 2
	if half == 0 {
		return model.TrendStable
	}

	firstAvg := calculator.Mean(prices[:half])
	secondAvg := calculator.Mean(prices[half:])

	switch {
	case secondAvg > firstAvg*risingRatio:
		return model.TrendIncreasing
	case secondAvg < firstAvg*fallingRatio:
		return model.TrendDecreasing
	default:
		return model.TrendStable
	}
}
