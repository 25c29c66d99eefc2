package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidImportFormat is returned when an imported strategy lacks a
// name or a rule list.
var ErrInvalidImportFormat = errors.New("invalid strategy format")

// StrategyRule is one weighted rule of a strategy.
type StrategyRule struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Weight int    `json:"weight"`
}

// Strategy is a named rule set the user can save, activate and share.
type Strategy struct {
	Name                  string         `json:"name"`
	Rules                 []StrategyRule `json:"rules"`
	ConfidenceThreshold   int            `json:"confidenceThreshold"`
	NumbersToPredictCount int            `json:"numbersToPredictCount"`
	TrackRNG              bool           `json:"trackRNG"`
	TrackTimeGaps         bool           `json:"trackTimeGaps"`
	AIGenerated           bool           `json:"aiGenerated"`
}

// Strategy import defaults.
const (
	DefaultStrategyConfidence = 75
	DefaultNumbersToPredict   = 3
	AIStrategyConfidence      = 85
)

// DefaultStrategy is the template a fresh strategy editor starts from.
func DefaultStrategy() Strategy {
	return Strategy{
		Name: "New Strategy",
		Rules: []StrategyRule{
			{Type: "pattern", Value: "alternating", Weight: 60},
			{Type: "hot", Value: "numbers", Weight: 40},
		},
		ConfidenceThreshold:   DefaultStrategyConfidence,
		NumbersToPredictCount: DefaultNumbersToPredict,
		TrackRNG:              true,
		TrackTimeGaps:         true,
	}
}

// AIStrategy is the fixed "AI optimized" rule set.
func AIStrategy() Strategy {
	return Strategy{
		Name: "AI Optimized Strategy",
		Rules: []StrategyRule{
			{Type: "pattern", Value: "sector", Weight: 70},
			{Type: "cold", Value: "numbers", Weight: 50},
			{Type: "time", Value: "gaps", Weight: 80},
			{Type: "rng", Value: "seed", Weight: 90},
		},
		ConfidenceThreshold:   AIStrategyConfidence,
		NumbersToPredictCount: DefaultNumbersToPredict,
		TrackRNG:              true,
		TrackTimeGaps:         true,
		AIGenerated:           true,
	}
}

type strategyImport struct {
	Name                  string          `json:"name"`
	Rules                 json.RawMessage `json:"rules"`
	ConfidenceThreshold   int             `json:"confidenceThreshold"`
	NumbersToPredictCount int             `json:"numbersToPredictCount"`
	TrackRNG              *bool           `json:"trackRNG"`
	TrackTimeGaps         *bool           `json:"trackTimeGaps"`
	AIGenerated           bool            `json:"aiGenerated"`
}

// ParseStrategy decodes a user supplied strategy document. Missing
// optional fields take the editor defaults.
func ParseStrategy(raw []byte) (Strategy, error) {
	var in strategyImport
	if err := json.Unmarshal(raw, &in); err != nil {
		return Strategy{}, fmt.Errorf("%w: %v", ErrInvalidImportFormat, err)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Strategy{}, fmt.Errorf("%w: name is required", ErrInvalidImportFormat)
	}
	rulesRaw := bytes.TrimSpace(in.Rules)
	if len(rulesRaw) == 0 || rulesRaw[0] != '[' {
		return Strategy{}, fmt.Errorf("%w: rules must be an array", ErrInvalidImportFormat)
	}
	rules := []StrategyRule{}
	if err := json.Unmarshal(rulesRaw, &rules); err != nil {
		return Strategy{}, fmt.Errorf("%w: rules: %v", ErrInvalidImportFormat, err)
	}

	s := Strategy{
		Name:                  in.Name,
		Rules:                 rules,
		ConfidenceThreshold:   in.ConfidenceThreshold,
		NumbersToPredictCount: in.NumbersToPredictCount,
		TrackRNG:              true,
		TrackTimeGaps:         true,
		AIGenerated:           in.AIGenerated,
	}
	if s.ConfidenceThreshold == 0 {
		s.ConfidenceThreshold = DefaultStrategyConfidence
	}
	if s.NumbersToPredictCount == 0 {
		s.NumbersToPredictCount = DefaultNumbersToPredict
	}
	if in.TrackRNG != nil {
		s.TrackRNG = *in.TrackRNG
	}
	if in.TrackTimeGaps != nil {
		s.TrackTimeGaps = *in.TrackTimeGaps
	}
	return s, nil
}

var whitespace = regexp.MustCompile(`\s+`)

// ExportFilename builds the download name for a strategy export.
func ExportFilename(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(name, "_")) + "_strategy.json"
}
