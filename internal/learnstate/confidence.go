package learnstate

import "strings"

// Confidence is the self-reported certainty a learner attaches to an answer.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ParseConfidence normalizes a raw confidence value. Unknown values map to
// low — classification only ever distinguishes "high" from "not high".
func ParseConfidence(s string) Confidence {
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceMedium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// IsHigh reports whether the confidence is the distinguished "high" level.
func (c Confidence) IsHigh() bool {
	return c == ConfidenceHigh
}
