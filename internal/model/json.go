package model

import (
	"encoding/json"
	"math"
)

// JSONFloat encodes NaN and ±Inf as null instead of failing the encoder.
type JSONFloat float64

func (f JSONFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// FiniteOrNil returns v, or nil when v is NaN or infinite.
func FiniteOrNil(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func (f FactorScore) MarshalJSON() ([]byte, error) {
	type plain FactorScore
	return json.Marshal(struct {
		plain
		RawScore JSONFloat `json:"raw_score"`
		Weight   JSONFloat `json:"weight"`
		Weighted JSONFloat `json:"weighted"`
	}{plain(f), JSONFloat(f.RawScore), JSONFloat(f.Weight), JSONFloat(f.Weighted)})
}

func (d DayScore) MarshalJSON() ([]byte, error) {
	type plain DayScore
	return json.Marshal(struct {
		plain
		Price       JSONFloat `json:"price"`
		TimePenalty JSONFloat `json:"time_penalty"`
		Total       JSONFloat `json:"total"`
	}{plain(d), JSONFloat(d.Price), JSONFloat(d.TimePenalty), JSONFloat(d.Total)})
}

func (r Recommendation) MarshalJSON() ([]byte, error) {
	type plain Recommendation
	return json.Marshal(struct {
		plain
		BestScore JSONFloat `json:"best_score"`
		Threshold JSONFloat `json:"threshold"`
		AvgPrice  JSONFloat `json:"avg_price"`
		StdPrice  JSONFloat `json:"std_price"`
	}{plain(r), JSONFloat(r.BestScore), JSONFloat(r.Threshold), JSONFloat(r.AvgPrice), JSONFloat(r.StdPrice)})
}

func (s AnalysisSummary) MarshalJSON() ([]byte, error) {
	type plain AnalysisSummary
	return json.Marshal(struct {
		plain
		MinPrice        JSONFloat `json:"min_price"`
		MaxPrice        JSONFloat `json:"max_price"`
		AvgPrice        JSONFloat `json:"avg_price"`
		StdDev          JSONFloat `json:"std_dev"`
		PriceVolatility JSONFloat `json:"price_volatility"`
	}{plain(s), JSONFloat(s.MinPrice), JSONFloat(s.MaxPrice), JSONFloat(s.AvgPrice), JSONFloat(s.StdDev), JSONFloat(s.PriceVolatility)})
}
