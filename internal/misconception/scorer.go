package misconception

import (
	"time"

	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
)

// Streak thresholds for status escalation. A record starts resolving after
// three consecutive correct observations and resolves after five.
const (
	ResolvingStreak = 3
	ResolvedStreak  = 5
)

// ShouldScore is the gating rule upstream of the scorer: an observation is
// evidence of a misconception only when the answer is wrong, or correct but
// held without high confidence. A correct-and-confident answer never reaches
// RecordObservation — see Reinforce for that path.
func ShouldScore(correct bool, conf learnstate.Confidence) bool {
	return !correct || !conf.IsHigh()
}

// RecordObservation folds one observation into a record and returns the
// updated copy. A nil existing record means this is the first gated
// observation of the (owner, concept, type) triple; the caller supplies
// identity fields on the returned record. Persistence is the caller's job.
func RecordObservation(existing *Record, correct bool, conf learnstate.Confidence, now time.Time) *Record {
	if existing == nil {
		return newRecord(correct, now)
	}

	r := existing.Clone()
	r.LastObservedAt = now

	if !correct {
		markIncorrect(r)
		return r
	}
	markCorrect(r, now)
	return r
}

// Reinforce applies a high-confidence correct answer to an existing record.
// It only ever decrements strength and escalates status; it never creates a
// record, so a nil existing record is a no-op.
func Reinforce(existing *Record, now time.Time) *Record {
	if existing == nil {
		return nil
	}
	r := existing.Clone()
	r.LastObservedAt = now
	markCorrect(r, now)
	return r
}

func newRecord(correct bool, now time.Time) *Record {
	r := &Record{
		Strength:        InitialStrength,
		OccurrenceCount: 1,
		Status:          StatusActive,
		LastObservedAt:  now,
	}
	// A correct low-confidence answer still creates the record (fragile
	// understanding), but starts it on the resolving track.
	if correct {
		r.CorrectStreak = 1
		r.Status = StatusResolving
	}
	return r
}

func markIncorrect(r *Record) {
	r.OccurrenceCount++
	r.Strength = clampStrength(r.Strength + 1)
	r.CorrectStreak = 0
	r.Status = StatusActive
	r.ResolvedAt = nil
}

func markCorrect(r *Record, now time.Time) {
	r.CorrectStreak++
	r.Strength = clampStrength(r.Strength - 1)

	switch {
	case r.CorrectStreak >= ResolvedStreak:
		if r.Status != StatusResolved {
			t := now
			r.ResolvedAt = &t
		}
		r.Status = StatusResolved
	case r.CorrectStreak >= ResolvingStreak:
		r.Status = StatusResolving
	}
}
