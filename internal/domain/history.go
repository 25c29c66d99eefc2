package domain

import "time"

// SpinOutcome is one observed wheel result.
type SpinOutcome struct {
	Number    int    `json:"number"`
	Color     Color  `json:"color"`
	Timestamp string `json:"timestamp"`
}

// NewSpinOutcome classifies number and stamps it with at.
func NewSpinOutcome(number int, at time.Time) (SpinOutcome, error) {
	color, err := Classify(number)
	if err != nil {
		return SpinOutcome{}, err
	}
	return SpinOutcome{
		Number:    number,
		Color:     color,
		Timestamp: FormatTimestamp(at),
	}, nil
}

// Consistent reports whether the stored color agrees with Classify.
func (o SpinOutcome) Consistent() bool {
	color, err := Classify(o.Number)
	return err == nil && color == o.Color
}

// FormatTimestamp renders t the way outcomes and predictions are stamped.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}
