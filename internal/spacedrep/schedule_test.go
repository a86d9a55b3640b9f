package spacedrep

import (
	"testing"
	"time"
)

func TestScheduleNext_ExactIntervalArithmetic(t *testing.T) {
	observedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		intervalDays int
		priority     int
	}{
		{1, 1},
		{3, 2},
		{7, 3},
		{14, 5},
	}

	for _, tt := range tests {
		s := ScheduleNext(observedAt, tt.intervalDays, tt.priority)

		want := observedAt.AddDate(0, 0, tt.intervalDays)
		if !s.NextReviewDate.Equal(want) {
			t.Errorf("interval %d: NextReviewDate = %v, want %v", tt.intervalDays, s.NextReviewDate, want)
		}
		if s.Priority != tt.priority {
			t.Errorf("interval %d: Priority = %d, want %d passed through", tt.intervalDays, s.Priority, tt.priority)
		}
	}
}

func TestScheduleNext_PreservesTimeOfDay(t *testing.T) {
	observedAt := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	s := ScheduleNext(observedAt, 1, 1)
	want := time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC)
	if !s.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", s.NextReviewDate, want)
	}
}
