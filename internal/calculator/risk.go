package calculator

// CalculateFutureRisk measures how likely the price is to rise after the
// given day. It is the share of later days priced strictly higher, scaled up
// by their average increase relative to the current price. The +1 in the
// denominator keeps a zero price finite.
//
// The last day, and any day outside the series, has no future and scores 0.
func CalculateFutureRisk(prices []float64, day int) float64 {
	if day < 0 || day >= len(prices)-1 {
		return 0
	}

	current := prices[day]
	future := prices[day+1:]

	var higher int
	var increase float64
	for _, p := range future {
		if p > current {
			higher++
			increase += p - current
		}
	}

	ratio := float64(higher) / float64(len(future))
	avgIncrease := 0.0
	if higher > 0 {
		avgIncrease = increase / float64(higher)
	}

	return ratio * (1 + avgIncrease/(current+1))
}
