package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestSampleStdDev(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{42}, 0},
		{"flat", []float64{10, 10, 10, 10}, 0},
		{"bessel", []float64{2, 4, 4, 4, 5, 5, 7, 9}, math.Sqrt(32.0 / 7.0)},
		{"pair", []float64{1, 3}, math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SampleStdDev(tt.prices), 1e-12)
		})
	}
}

func TestMinMax_FirstOccurrence(t *testing.T) {
	low, lowDay, high, highDay, err := MinMax([]float64{5, 1, 9, 1, 9, 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, low)
	assert.Equal(t, 1, lowDay)
	assert.Equal(t, 9.0, high)
	assert.Equal(t, 2, highDay)
}

func TestMinMax_Empty(t *testing.T) {
	_, _, _, _, err := MinMax(nil)
	assert.Error(t, err)
}

func TestTrendWindow(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0}, {3, 0}, {4, 1}, {10, 2}, {28, 7}, {29, 7}, {100, 7},
	}
	for _, tt := range tests {
		if got := TrendWindow(tt.n, DefaultMaxTrendWindow); got != tt.want {
			t.Errorf("TrendWindow(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestCalculateTrendScores(t *testing.T) {
	prices := []float64{10, 20, 30, 40, 50, 60, 70, 80}
	window := TrendWindow(len(prices), DefaultMaxTrendWindow) // 2
	trends := CalculateTrendScores(prices, window)

	require.Len(t, trends, len(prices))
	want := []float64{0, 5, 15, 15, 15, 15, 15, 15}
	for i := range want {
		assert.InDelta(t, want[i], trends[i], 1e-12, "day %d", i)
	}
}

func TestCalculateTrendScores_FirstDayIsZero(t *testing.T) {
	series := [][]float64{
		{7},
		{3, 1},
		{100, 90, 80},
		{5, 100, 100, 100, 100, 100, 100, 100, 100, 100},
		{0, 0, 0, 0, 0},
	}
	for _, prices := range series {
		trends := CalculateTrendScores(prices, TrendWindow(len(prices), DefaultMaxTrendWindow))
		assert.Equal(t, 0.0, trends[0], "prices %v", prices)
	}
}

func TestCalculateTrendScores_ZeroWindowUsesInclusiveMean(t *testing.T) {
	trends := CalculateTrendScores([]float64{10, 20, 30}, 0)
	assert.InDelta(t, 0.0, trends[0], 1e-12)
	assert.InDelta(t, 5.0, trends[1], 1e-12)
	assert.InDelta(t, 10.0, trends[2], 1e-12)
}

func TestCalculateTrendScores_Empty(t *testing.T) {
	assert.Empty(t, CalculateTrendScores(nil, 0))
}

func TestCalculateFutureRisk(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		day    int
		want   float64
	}{
		{"last day", []float64{10, 20, 30}, 2, 0},
		{"beyond end", []float64{10, 20, 30}, 5, 0},
		{"negative day", []float64{10, 20, 30}, -1, 0},
		{"single element", []float64{10}, 0, 0},
		{"no higher future", []float64{100, 90, 80, 70}, 0, 0},
		{"equal is not higher", []float64{10, 10, 10}, 0, 0},
		{"mixed future", []float64{10, 20, 5, 30}, 0, 52.0 / 33.0},
		{"zero price smoothing", []float64{0, 10}, 0, 11},
		{"all higher", []float64{10, 20, 30, 40, 50, 60}, 0, 1 + 30.0/11.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateFutureRisk(tt.prices, tt.day), 1e-12)
		})
	}
}
