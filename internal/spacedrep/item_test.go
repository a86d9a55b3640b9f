package spacedrep

import (
	"fmt"
	"testing"
	"time"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestIsDue(t *testing.T) {
	tests := []struct {
		name string
		next time.Time
		want bool
	}{
		{"past", now.AddDate(0, 0, -1), true},
		{"exactly now", now, true},
		{"future", now.AddDate(0, 0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := &ReviewItem{NextReviewDate: tt.next}
			if got := it.IsDue(now); got != tt.want {
				t.Errorf("IsDue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverdueDays(t *testing.T) {
	it := &ReviewItem{NextReviewDate: now.AddDate(0, 0, -2)}
	if got := it.OverdueDays(now); got != 2.0 {
		t.Errorf("OverdueDays = %v, want 2.0", got)
	}

	it = &ReviewItem{NextReviewDate: now.AddDate(0, 0, 3)}
	if got := it.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays = %v, want 0 when not due", got)
	}
}

func TestApply(t *testing.T) {
	it := &ReviewItem{OwnerID: "u1", ConceptID: "fractions", Priority: 5, NextReviewDate: now}

	s := ScheduleNext(now, 3, 2)
	it.Apply(s, now)

	if it.Priority != 2 {
		t.Errorf("Priority = %d, want 2", it.Priority)
	}
	if !it.NextReviewDate.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("NextReviewDate = %v", it.NextReviewDate)
	}
	if it.LastReviewDate == nil || !it.LastReviewDate.Equal(now) {
		t.Errorf("LastReviewDate = %v, want %v", it.LastReviewDate, now)
	}
}

func TestSortDue_PriorityThenDateThenConcept(t *testing.T) {
	items := []*ReviewItem{
		{ConceptID: "c", Priority: 2, NextReviewDate: now.AddDate(0, 0, -1)},
		{ConceptID: "b", Priority: 1, NextReviewDate: now.AddDate(0, 0, -1)},
		{ConceptID: "a", Priority: 1, NextReviewDate: now.AddDate(0, 0, -3)},
		{ConceptID: "d", Priority: 1, NextReviewDate: now.AddDate(0, 0, -3)},
	}

	SortDue(items)

	wantOrder := []string{"a", "d", "b", "c"}
	for i, want := range wantOrder {
		if items[i].ConceptID != want {
			t.Errorf("position %d: got %q, want %q", i, items[i].ConceptID, want)
		}
	}
}

func TestDueItems_FiltersAndCaps(t *testing.T) {
	var items []*ReviewItem
	// 25 due items and a few future ones.
	for i := 0; i < 25; i++ {
		items = append(items, &ReviewItem{
			ConceptID:      fmt.Sprintf("concept-%02d", i),
			Priority:       1 + i%5,
			NextReviewDate: now.AddDate(0, 0, -1),
		})
	}
	for i := 0; i < 3; i++ {
		items = append(items, &ReviewItem{
			ConceptID:      fmt.Sprintf("future-%d", i),
			Priority:       1,
			NextReviewDate: now.AddDate(0, 0, 2),
		})
	}

	due := DueItems(items, now)

	if len(due) != SessionSize {
		t.Fatalf("got %d items, want %d", len(due), SessionSize)
	}
	for i := 1; i < len(due); i++ {
		if due[i-1].Priority > due[i].Priority {
			t.Errorf("priority order violated at %d: %d > %d", i, due[i-1].Priority, due[i].Priority)
		}
	}
	for _, it := range due {
		if !it.IsDue(now) {
			t.Errorf("not-due item %q surfaced", it.ConceptID)
		}
	}
}
