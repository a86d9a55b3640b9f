package misconception

import (
	"testing"
	"time"

	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestShouldScore(t *testing.T) {
	tests := []struct {
		name    string
		correct bool
		conf    learnstate.Confidence
		want    bool
	}{
		{"wrong high", false, learnstate.ConfidenceHigh, true},
		{"wrong low", false, learnstate.ConfidenceLow, true},
		{"correct low", true, learnstate.ConfidenceLow, true},
		{"correct medium", true, learnstate.ConfidenceMedium, true},
		{"correct high", true, learnstate.ConfidenceHigh, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldScore(tt.correct, tt.conf); got != tt.want {
				t.Errorf("ShouldScore(%v, %q) = %v, want %v", tt.correct, tt.conf, got, tt.want)
			}
		})
	}
}

func TestRecordObservation_CreateOnIncorrect(t *testing.T) {
	r := RecordObservation(nil, false, learnstate.ConfidenceHigh, t0)

	if r.Strength != 5 {
		t.Errorf("Strength = %d, want 5", r.Strength)
	}
	if r.OccurrenceCount != 1 {
		t.Errorf("OccurrenceCount = %d, want 1", r.OccurrenceCount)
	}
	if r.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0", r.CorrectStreak)
	}
	if r.Status != StatusActive {
		t.Errorf("Status = %q, want active", r.Status)
	}
	if !r.LastObservedAt.Equal(t0) {
		t.Errorf("LastObservedAt = %v, want %v", r.LastObservedAt, t0)
	}
	if r.ResolvedAt != nil {
		t.Error("ResolvedAt should be nil on creation")
	}
}

func TestRecordObservation_CreateOnLowConfidenceCorrect(t *testing.T) {
	r := RecordObservation(nil, true, learnstate.ConfidenceLow, t0)

	if r.Strength != 5 {
		t.Errorf("Strength = %d, want 5", r.Strength)
	}
	if r.CorrectStreak != 1 {
		t.Errorf("CorrectStreak = %d, want 1", r.CorrectStreak)
	}
	if r.Status != StatusResolving {
		t.Errorf("Status = %q, want resolving", r.Status)
	}
}

func TestRecordObservation_IncorrectResetsStreakAndRevertsStatus(t *testing.T) {
	existing := &Record{
		Strength:        3,
		OccurrenceCount: 4,
		CorrectStreak:   4,
		Status:          StatusResolving,
		LastObservedAt:  t0,
	}

	r := RecordObservation(existing, false, learnstate.ConfidenceLow, t0.Add(time.Hour))

	if r.Strength != 4 {
		t.Errorf("Strength = %d, want 4", r.Strength)
	}
	if r.OccurrenceCount != 5 {
		t.Errorf("OccurrenceCount = %d, want 5", r.OccurrenceCount)
	}
	if r.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0", r.CorrectStreak)
	}
	if r.Status != StatusActive {
		t.Errorf("Status = %q, want active", r.Status)
	}
	if r.ResolvedAt != nil {
		t.Error("ResolvedAt should be cleared")
	}
	// Input record untouched.
	if existing.CorrectStreak != 4 || existing.Status != StatusResolving {
		t.Error("existing record was mutated")
	}
}

func TestRecordObservation_IncorrectRegressesResolved(t *testing.T) {
	resolved := t0
	existing := &Record{
		Strength:       1,
		CorrectStreak:  6,
		Status:         StatusResolved,
		ResolvedAt:     &resolved,
		LastObservedAt: t0,
	}

	r := RecordObservation(existing, false, learnstate.ConfidenceHigh, t0.Add(time.Hour))

	if r.Status != StatusActive {
		t.Errorf("Status = %q, want active", r.Status)
	}
	if r.ResolvedAt != nil {
		t.Error("ResolvedAt should be cleared on regression")
	}
}

func TestRecordObservation_FiveCorrectReachResolved(t *testing.T) {
	r := &Record{
		Strength:       5,
		CorrectStreak:  0,
		Status:         StatusActive,
		LastObservedAt: t0,
	}

	var resolvedSetAt int
	for i := 1; i <= 5; i++ {
		now := t0.AddDate(0, 0, i)
		r = RecordObservation(r, true, learnstate.ConfidenceLow, now)

		if r.CorrectStreak != i {
			t.Fatalf("step %d: CorrectStreak = %d, want %d", i, r.CorrectStreak, i)
		}
		switch {
		case i < ResolvingStreak:
			if r.Status != StatusActive {
				t.Errorf("step %d: Status = %q, want active", i, r.Status)
			}
		case i < ResolvedStreak:
			if r.Status != StatusResolving {
				t.Errorf("step %d: Status = %q, want resolving", i, r.Status)
			}
		default:
			if r.Status != StatusResolved {
				t.Errorf("step %d: Status = %q, want resolved", i, r.Status)
			}
			if r.ResolvedAt == nil {
				t.Fatalf("step %d: ResolvedAt not set", i)
			}
			if resolvedSetAt == 0 {
				resolvedSetAt = i
				if !r.ResolvedAt.Equal(t0.AddDate(0, 0, i)) {
					t.Errorf("ResolvedAt = %v, want the step-%d timestamp", r.ResolvedAt, i)
				}
			}
		}
	}

	if resolvedSetAt != ResolvedStreak {
		t.Errorf("resolved at step %d, want %d", resolvedSetAt, ResolvedStreak)
	}
}

func TestRecordObservation_ResolvedAtSetExactlyOnce(t *testing.T) {
	r := &Record{Strength: 2, CorrectStreak: 4, Status: StatusResolving, LastObservedAt: t0}

	r = RecordObservation(r, true, learnstate.ConfidenceLow, t0.AddDate(0, 0, 1))
	if r.Status != StatusResolved || r.ResolvedAt == nil {
		t.Fatal("expected resolved with timestamp")
	}
	first := *r.ResolvedAt

	r = RecordObservation(r, true, learnstate.ConfidenceLow, t0.AddDate(0, 0, 2))
	if !r.ResolvedAt.Equal(first) {
		t.Errorf("ResolvedAt moved from %v to %v on a later correct answer", first, r.ResolvedAt)
	}
}

func TestRecordObservation_CorrectNeverIncreasesStrength(t *testing.T) {
	r := &Record{Strength: 7, CorrectStreak: 0, Status: StatusActive, LastObservedAt: t0}
	for i := 1; i <= 10; i++ {
		prev := r.Strength
		prevStreak := r.CorrectStreak
		r = RecordObservation(r, true, learnstate.ConfidenceMedium, t0.AddDate(0, 0, i))
		if r.Strength > prev {
			t.Fatalf("step %d: strength increased %d -> %d", i, prev, r.Strength)
		}
		if r.CorrectStreak < prevStreak {
			t.Fatalf("step %d: streak decreased %d -> %d", i, prevStreak, r.CorrectStreak)
		}
	}
}

func TestRecordObservation_StrengthAlwaysClamped(t *testing.T) {
	// A long adversarial sequence never escapes [1,10].
	seq := []bool{false, false, false, false, false, false, false, true, true,
		true, true, true, true, true, true, true, true, true, false, false}

	r := RecordObservation(nil, false, learnstate.ConfidenceLow, t0)
	for i, correct := range seq {
		r = RecordObservation(r, correct, learnstate.ConfidenceLow, t0.Add(time.Duration(i)*time.Hour))
		if r.Strength < MinStrength || r.Strength > MaxStrength {
			t.Fatalf("step %d: strength %d out of [%d,%d]", i, r.Strength, MinStrength, MaxStrength)
		}
	}
}

func TestRecordObservation_ClampsOutOfRangeStoredStrength(t *testing.T) {
	// A corrupt stored value is clamped on the next update.
	r := &Record{Strength: 14, Status: StatusActive, LastObservedAt: t0}
	r = RecordObservation(r, false, learnstate.ConfidenceLow, t0.Add(time.Hour))
	if r.Strength != MaxStrength {
		t.Errorf("Strength = %d, want %d", r.Strength, MaxStrength)
	}

	r = &Record{Strength: -3, Status: StatusActive, LastObservedAt: t0}
	r = RecordObservation(r, true, learnstate.ConfidenceLow, t0.Add(time.Hour))
	if r.Strength != MinStrength {
		t.Errorf("Strength = %d, want %d", r.Strength, MinStrength)
	}
}

func TestReinforce_NilIsNoOp(t *testing.T) {
	if got := Reinforce(nil, t0); got != nil {
		t.Errorf("Reinforce(nil) = %+v, want nil", got)
	}
}

func TestReinforce_DecrementsAndEscalates(t *testing.T) {
	r := &Record{Strength: 4, CorrectStreak: 2, Status: StatusActive, LastObservedAt: t0}

	r = Reinforce(r, t0.Add(time.Hour))

	if r.Strength != 3 {
		t.Errorf("Strength = %d, want 3", r.Strength)
	}
	if r.CorrectStreak != 3 {
		t.Errorf("CorrectStreak = %d, want 3", r.CorrectStreak)
	}
	if r.Status != StatusResolving {
		t.Errorf("Status = %q, want resolving", r.Status)
	}
	if r.OccurrenceCount != 0 {
		t.Errorf("OccurrenceCount changed to %d", r.OccurrenceCount)
	}
}
