package domain

import "fmt"

// Trend is the direction label attached to a prediction.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PredictionRecord is a single forecast. Only the latest one is persisted.
type PredictionRecord struct {
	Number     int    `json:"number"`
	Color      Color  `json:"color"`
	Confidence int    `json:"confidence"`
	Trending   Trend  `json:"trending"`
	Timestamp  string `json:"timestamp"`
}

// Label renders the prediction for display, e.g. "Red 32".
func (p PredictionRecord) Label() string {
	return fmt.Sprintf("%s %d", p.Color.Title(), p.Number)
}

// TrendFor maps a confidence score onto a trend label.
func TrendFor(confidence int) Trend {
	switch {
	case confidence > TrendUpAbove:
		return TrendUp
	case confidence < TrendDownBelow:
		return TrendDown
	default:
		return TrendStable
	}
}
