package report

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BookingAdvisor/internal/analyzer"
	"BookingAdvisor/internal/model"
	"BookingAdvisor/internal/strategy"
)

func TestWriteRecommendation(t *testing.T) {
	rec := strategy.Evaluate(model.PriceSeries{100, 90, 80, 70, 60, 50}, strategy.DefaultParams())

	var buf bytes.Buffer
	require.NoError(t, WriteRecommendation(&buf, rec, 0))

	out := buf.String()
	assert.Contains(t, out, "Best day to book: 5 (price 50.00, highest score")
	assert.Contains(t, out, "Trend window 1")
	assert.Contains(t, out, "100.00")
	assert.NotContains(t, out, "more days")
}

func TestWriteRecommendation_ThresholdReason(t *testing.T) {
	prices := make(model.PriceSeries, 16)
	for i := range prices {
		prices[i] = 100
	}
	prices[8] = 40
	prices[15] = 10
	rec := strategy.Evaluate(prices, strategy.DefaultParams())

	var buf bytes.Buffer
	require.NoError(t, WriteRecommendation(&buf, rec, 4))

	out := buf.String()
	assert.Contains(t, out, "Best day to book: 8 (price 40.00, early deal")
	assert.Contains(t, out, "score preferred day 15")
	assert.Contains(t, out, "... 12 more days")
}

func TestWriteRecommendation_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecommendation(&buf, strategy.Evaluate(nil, strategy.DefaultParams()), 0))
	assert.Contains(t, buf.String(), "nothing to recommend")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, analyzer.AnalyzePricePatterns(model.PriceSeries{100, 100, 130, 130})))

	out := buf.String()
	assert.Contains(t, out, "increasing")
	assert.Contains(t, out, "100.00 (day 0)")
	assert.Contains(t, out, "130.00 (day 2)")

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, nil))
	assert.Contains(t, buf.String(), "nothing to analyze")
}

func TestWriteJSON(t *testing.T) {
	prices := model.PriceSeries{10, 20, 30}
	res := Result{
		Recommendation: strategy.Evaluate(prices, strategy.DefaultParams()),
		Summary:        analyzer.AnalyzePricePatterns(prices).AsMap(),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, "increasing", summary["trend"])
	rec := decoded["recommendation"].(map[string]any)
	assert.Equal(t, float64(0), rec["best_day"])
}

func TestWriteJSON_NonFinitePrices(t *testing.T) {
	prices := model.PriceSeries{10, math.NaN(), 20}
	res := Result{
		Recommendation: strategy.Evaluate(prices, strategy.DefaultParams()),
		Summary:        analyzer.AnalyzePricePatterns(prices).AsMap(),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	rec := decoded["recommendation"].(map[string]any)
	assert.Nil(t, rec["avg_price"])
	assert.Contains(t, rec, "avg_price")
	summary := decoded["summary"].(map[string]any)
	assert.Nil(t, summary["avg_price"])
	assert.Equal(t, "stable", summary["trend"])
}
