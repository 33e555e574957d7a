package calculator

// DefaultMaxTrendWindow caps the trailing window used for trend scores.
const DefaultMaxTrendWindow = 7

// TrendWindow returns the trailing window for a series of n days:
// a quarter of the series, capped at maxWindow.
func TrendWindow(n, maxWindow int) int {
	w := n / 4
	if w > maxWindow {
		w = maxWindow
	}
	if w < 0 {
		w = 0
	}
	return w
}

// CalculateTrendScores returns, for every day, the price minus a local
// average. Days inside the first window compare against the mean of all
// prices up to and including that day; later days compare against the mean
// of the previous window days, excluding the day itself. A zero window (short
// series) always uses the inclusive mean, so trend[0] is 0.
func CalculateTrendScores(prices []float64, window int) []float64 {
	trends := make([]float64, len(prices))
	for i, p := range prices {
		var avg float64
		if i < window || window <= 0 {
			avg = Mean(prices[:i+1])
		} else {
			avg = Mean(prices[i-window : i])
		}
		trends[i] = p - avg
	}
	return trends
}
