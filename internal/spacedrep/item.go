package spacedrep

import (
	"sort"
	"time"
)

// ReviewItem holds the spaced repetition state for one (owner, concept) pair.
type ReviewItem struct {
	OwnerID        string     `json:"owner_id"`
	ConceptID      string     `json:"concept_id"`
	Priority       int        `json:"priority"` // 1 = review first, 5 = last.
	NextReviewDate time.Time  `json:"next_review_date"`
	LastReviewDate *time.Time `json:"last_review_date,omitempty"`
}

// IsDue reports whether the item should be reviewed (at or past its date).
func (it *ReviewItem) IsDue(now time.Time) bool {
	return !now.Before(it.NextReviewDate)
}

// OverdueDays returns how many days past due the item is. 0 if not yet due.
func (it *ReviewItem) OverdueDays(now time.Time) float64 {
	if now.Before(it.NextReviewDate) {
		return 0
	}
	return now.Sub(it.NextReviewDate).Hours() / 24.0
}

// Apply folds a schedule into the item, recording the review that produced it.
func (it *ReviewItem) Apply(s Schedule, reviewedAt time.Time) {
	t := reviewedAt
	it.LastReviewDate = &t
	it.NextReviewDate = s.NextReviewDate
	it.Priority = s.Priority
}

// SortDue orders items for a review session: ascending priority, then the
// longest-overdue first, then concept ID for a deterministic tiebreak.
func SortDue(items []*ReviewItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority < items[j].Priority
		}
		if !items[i].NextReviewDate.Equal(items[j].NextReviewDate) {
			return items[i].NextReviewDate.Before(items[j].NextReviewDate)
		}
		return items[i].ConceptID < items[j].ConceptID
	})
}

// DueItems filters a snapshot down to due items, sorted for a session and
// capped at SessionSize.
func DueItems(items []*ReviewItem, now time.Time) []*ReviewItem {
	var due []*ReviewItem
	for _, it := range items {
		if it.IsDue(now) {
			due = append(due, it)
		}
	}
	SortDue(due)
	if len(due) > SessionSize {
		due = due[:SessionSize]
	}
	return due
}
