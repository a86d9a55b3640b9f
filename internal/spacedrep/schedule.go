package spacedrep

import "time"

// SessionSize caps how many due items a single review session surfaces.
const SessionSize = 20

// Schedule is the scheduler's output for one review outcome.
type Schedule struct {
	NextReviewDate time.Time
	Priority       int
}

// ScheduleNext computes when a concept should resurface. Pure arithmetic:
// the next review lands exactly intervalDays after the observation, and
// priority passes through unchanged.
func ScheduleNext(observedAt time.Time, intervalDays, priority int) Schedule {
	return Schedule{
		NextReviewDate: observedAt.AddDate(0, 0, intervalDays),
		Priority:       priority,
	}
}
