package strategy

import (
	"fmt"

	"BookingAdvisor/internal/calculator"
	"BookingAdvisor/internal/model"
)

// Factor names as they appear in DayScore.Factors.
const (
	FactorPriceDeviation = "price_deviation"
	FactorTrend          = "trend"
	FactorFutureRisk     = "future_risk"
)

// scorePriceDeviation rewards days priced below the series average,
// measured in (std+1) units.
func scorePriceDeviation(price, avg, std, weight float64) model.FactorScore {
	score := (avg - price) / (std + 1)
	return model.FactorScore{
		Name:       FactorPriceDeviation,
		RawScore:   score,
		Weight:     weight,
		Weighted:   score * weight,
		Commentary: fmt.Sprintf("%+.2f vs avg %.2f", price-avg, avg),
	}
}

// scoreTrend rewards days priced below their trailing local average.
func scoreTrend(trends []float64, day int, weight float64) model.FactorScore {
	var score float64
	if day < len(trends) {
		score = -trends[day]
	}
	return model.FactorScore{
		Name:       FactorTrend,
		RawScore:   score,
		Weight:     weight,
		Weighted:   score * weight,
		Commentary: fmt.Sprintf("%+.2f vs trailing avg", -score),
	}
}

// scoreFutureRisk rewards days after which prices are likely to rise.
func scoreFutureRisk(prices []float64, day int, weight float64) model.FactorScore {
	score := calculator.CalculateFutureRisk(prices, day)
	return model.FactorScore{
		Name:       FactorFutureRisk,
		RawScore:   score,
		Weight:     weight,
		Weighted:   score * weight,
		Commentary: fmt.Sprintf("risk=%.3f", score),
	}
}

// timePenalty grows linearly with the day index to discourage waiting.
func timePenalty(day, n int, factor float64) float64 {
	return (float64(day) / float64(n)) * factor
}
