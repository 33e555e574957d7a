package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"BookingAdvisor/internal/model"
	"BookingAdvisor/internal/strategy"
)

// WriteRecommendation renders the recommended day followed by the per-day
// factor table. maxRows > 0 truncates the table; the recommendation line is
// always printed.
func WriteRecommendation(w io.Writer, rec *model.Recommendation, maxRows int) error {
	if rec == nil || rec.Reason == model.ReasonEmpty {
		_, err := fmt.Fprintln(w, "No prices given, nothing to recommend.")
		return err
	}

	var b strings.Builder
	best := rec.Days[rec.BestDay]
	b.WriteString(fmt.Sprintf("Best day to book: %d (price %.2f, %s)\n", rec.BestDay, best.Price, describeReason(rec)))
	b.WriteString(fmt.Sprintf("Avg %.2f | Std %.2f | Threshold %.2f | Trend window %d\n\n",
		rec.AvgPrice, rec.StdPrice, rec.Threshold, rec.Window))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Day", "Price", "Price Dev", "Trend", "Risk", "Penalty", "Total", ""}),
	)

	days := rec.Days
	if maxRows > 0 && len(days) > maxRows {
		days = days[:maxRows]
	}
	for _, d := range days {
		mark := ""
		if d.Day == rec.BestDay {
			mark = "<"
		}
		if err := table.Append([]string{
			fmt.Sprintf("%d", d.Day),
			fmt.Sprintf("%.2f", d.Price),
			fmt.Sprintf("%+.3f", d.Factor(strategy.FactorPriceDeviation).Weighted),
			fmt.Sprintf("%+.3f", d.Factor(strategy.FactorTrend).Weighted),
			fmt.Sprintf("%+.3f", d.Factor(strategy.FactorFutureRisk).Weighted),
			fmt.Sprintf("%.3f", d.TimePenalty),
			fmt.Sprintf("%+.3f", d.Total),
			mark,
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if hidden := len(rec.Days) - len(days); hidden > 0 {
		_, err := fmt.Fprintf(w, "... %d more days\n", hidden)
		return err
	}
	return nil
}

// WriteSummary renders the descriptive statistics of a series.
func WriteSummary(w io.Writer, s *model.AnalysisSummary) error {
	if s == nil {
		_, err := fmt.Fprintln(w, "No prices given, nothing to analyze.")
		return err
	}

	table := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Metric", "Value"}))
	rows := [][]string{
		{"min_price", fmt.Sprintf("%.2f (day %d)", s.MinPrice, s.MinDay)},
		{"max_price", fmt.Sprintf("%.2f (day %d)", s.MaxPrice, s.MaxDay)},
		{"avg_price", fmt.Sprintf("%.2f", s.AvgPrice)},
		{"std_dev", fmt.Sprintf("%.2f", s.StdDev)},
		{"price_volatility", fmt.Sprintf("%.1f%%", s.PriceVolatility*100)},
		{"trend", string(s.Trend)},
	}
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}

// Result is the JSON document written for a full run.
type Result struct {
	Recommendation *model.Recommendation `json:"recommendation,omitempty"`
	Summary        map[string]any        `json:"summary"`
}

// MarshalJSON writes non-finite summary values as null.
func (r Result) MarshalJSON() ([]byte, error) {
	summary := make(map[string]any, len(r.Summary))
	for k, v := range r.Summary {
		if f, ok := v.(float64); ok {
			v = model.FiniteOrNil(f)
		}
		summary[k] = v
	}
	type plain Result
	return json.Marshal(struct {
		plain
		Summary map[string]any `json:"summary"`
	}{plain(r), summary})
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func describeReason(rec *model.Recommendation) string {
	switch rec.Reason {
	case model.ReasonThreshold:
		if rec.BestDay != rec.ScoredBestDay {
			return fmt.Sprintf("early deal at or below %.2f, score preferred day %d", rec.Threshold, rec.ScoredBestDay)
		}
		return fmt.Sprintf("early deal at or below %.2f", rec.Threshold)
	default:
		return fmt.Sprintf("highest score %+.3f", rec.BestScore)
	}
}
