package model

// Reason records which rule picked the recommended day.
type Reason string

const (
	ReasonEmpty     Reason = "EMPTY"
	ReasonScore     Reason = "SCORE"
	ReasonThreshold Reason = "THRESHOLD"
)

// FactorScore represents a single factor's scoring result.
type FactorScore struct {
	Name       string  `json:"name"`
	RawScore   float64 `json:"raw_score"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
	Commentary string  `json:"commentary,omitempty"`
}

// DayScore is the full breakdown for one candidate booking day.
type DayScore struct {
	Day         int           `json:"day"`
	Price       float64       `json:"price"`
	Factors     []FactorScore `json:"factors"`
	TimePenalty float64       `json:"time_penalty"`
	Total       float64       `json:"total"`
}

// Factor returns the named factor, or a zero FactorScore if the day has none.
func (d DayScore) Factor(name string) FactorScore {
	for _, f := range d.Factors {
		if f.Name == name {
			return f
		}
	}
	return FactorScore{}
}

// Recommendation is the final output of the booking strategy.
// For an empty series BestDay is 0 and carries no meaning; check Reason.
type Recommendation struct {
	BestDay       int        `json:"best_day"`
	Reason        Reason     `json:"reason"`
	ScoredBestDay int        `json:"scored_best_day"`
	BestScore     float64    `json:"best_score"`
	Threshold     float64    `json:"threshold"`
	AvgPrice      float64    `json:"avg_price"`
	StdPrice      float64    `json:"std_price"`
	Window        int        `json:"window"`
	Days          []DayScore `json:"days"`
}
