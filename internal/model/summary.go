package model

// Trend is the direction of the second half of a series against the first.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// AnalysisSummary holds descriptive statistics of a price series.
type AnalysisSummary struct {
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	AvgPrice        float64 `json:"avg_price"`
	StdDev          float64 `json:"std_dev"`
	MinDay          int     `json:"min_day"`
	MaxDay          int     `json:"max_day"`
	PriceVolatility float64 `json:"price_volatility"`
	Trend           Trend   `json:"trend"`
}

// AsMap returns the summary as a fixed-key mapping. A nil summary, produced
// for an empty series, maps to an empty map.
func (s *AnalysisSummary) AsMap() map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return map[string]any{
		"min_price":        s.MinPrice,
		"max_price":        s.MaxPrice,
		"avg_price":        s.AvgPrice,
		"std_dev":          s.StdDev,
		"min_day":          s.MinDay,
		"max_day":          s.MaxDay,
		"price_volatility": s.PriceVolatility,
		"trend":            string(s.Trend),
	}
}
