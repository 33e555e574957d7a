package strategy

import (
	"math"

	"BookingAdvisor/internal/calculator"
	"BookingAdvisor/internal/model"
)

// SelectBestBookingDay returns the recommended day to book using the default
// parameters. An empty series returns 0, which is not a real recommendation.
func SelectBestBookingDay(prices model.PriceSeries) int {
	return Evaluate(prices, DefaultParams()).BestDay
}

// Evaluate scores every day of the series and picks the booking day.
//
// The day with the strictly greatest total wins, so ties keep the earliest
// day. An unusually cheap day early in the series overrides the score.
func Evaluate(prices model.PriceSeries, p Params) *model.Recommendation {
	n := len(prices)
	if n == 0 {
		return &model.Recommendation{Reason: model.ReasonEmpty, Days: []model.DayScore{}}
	}

	window := calculator.TrendWindow(n, p.MaxTrendWindow)
	trends := calculator.CalculateTrendScores(prices, window)
	avg := calculator.Mean(prices)
	std := calculator.SampleStdDev(prices)

	rec := &model.Recommendation{
		AvgPrice: avg,
		StdPrice: std,
		Window:   window,
		Days:     make([]model.DayScore, n),
	}

	bestScore := math.Inf(-1)
	for day := 0; day < n; day++ {
		ds := scoreDay(prices, trends, day, avg, std, p)
		rec.Days[day] = ds
		if ds.Total > bestScore {
			bestScore = ds.Total
			rec.ScoredBestDay = day
		}
	}
	if !math.IsInf(bestScore, -1) {
		rec.BestScore = bestScore
	}
	rec.BestDay = rec.ScoredBestDay
	rec.Reason = model.ReasonScore

	rec.Threshold = avg - std*p.ThresholdStdMultiplier
	if day, ok := earlyDeal(prices, rec.Threshold, p.EarlyDays); ok {
		rec.BestDay = day
		rec.Reason = model.ReasonThreshold
	}

	return rec
}

func scoreDay(prices model.PriceSeries, trends []float64, day int, avg, std float64, p Params) model.DayScore {
	f1 := scorePriceDeviation(prices[day], avg, std, p.PriceWeight)
	f2 := scoreTrend(trends, day, p.TrendWeight)
	f3 := scoreFutureRisk(prices, day, p.RiskWeight)
	penalty := timePenalty(day, len(prices), p.TimePenalty)

	return model.DayScore{
		Day:         day,
		Price:       prices[day],
		Factors:     []model.FactorScore{f1, f2, f3},
		TimePenalty: penalty,
		Total:       f1.Weighted + f2.Weighted + f3.Weighted - penalty,
	}
}

// earlyDeal returns the first of the leading days priced at or below threshold.
func earlyDeal(prices model.PriceSeries, threshold float64, earlyDays int) (int, bool) {
	limit := earlyDays
	if limit > len(prices) {
		limit = len(prices)
	}
	for day := 0; day < limit; day++ {
		if prices[day] <= threshold {
			return day, true
		}
	}
	return 0, false
}
