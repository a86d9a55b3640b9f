package misconception

import "time"

// Status is a misconception's position in its resolution lifecycle.
type Status string

const (
	StatusActive    Status = "active"
	StatusResolving Status = "resolving"
	StatusResolved  Status = "resolved"
)

// Strength bounds. Strength is a coarse ratchet, not a precise estimate:
// it moves one step per observation and is clamped on every update.
const (
	MinStrength     = 1
	MaxStrength     = 10
	InitialStrength = 5
)

// Record tracks one recurring conceptual error for one learner.
// Identity is the (OwnerID, Concept, Type) triple.
type Record struct {
	OwnerID         string
	Concept         string
	Type            string
	Strength        int // Clamped to [MinStrength, MaxStrength].
	OccurrenceCount int // Monotonic, bumped on renewed incorrect evidence.
	CorrectStreak   int // Consecutive correct observations; reset on any wrong one.
	Status          Status
	LastObservedAt  time.Time
	ResolvedAt      *time.Time // Set only on the transition into resolved.
}

// Clone returns a copy of the record. ResolvedAt is copied by value so the
// clone can be mutated independently.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	if r.ResolvedAt != nil {
		t := *r.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}

// clampStrength forces strength into [MinStrength, MaxStrength] regardless
// of the prior stored value.
func clampStrength(s int) int {
	if s < MinStrength {
		return MinStrength
	}
	if s > MaxStrength {
		return MaxStrength
	}
	return s
}
