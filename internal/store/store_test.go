package store

import (
	"context"
	"testing"
	"time"

	"github.com/Kairavparikh/quizwhiz/internal/misconception"
	"github.com/Kairavparikh/quizwhiz/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMisconceptionRepo_FindMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.MisconceptionRepo()

	rec, err := repo.Find(context.Background(), "u1", "fractions", "adds denominators")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for missing record, got %+v", rec)
	}
}

func TestMisconceptionRepo_SaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MisconceptionRepo()
	ctx := context.Background()

	observed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := &misconception.Record{
		OwnerID:         "u1",
		Concept:         "fractions",
		Type:            "adds denominators",
		Strength:        5,
		OccurrenceCount: 1,
		Status:          misconception.StatusActive,
		LastObservedAt:  observed,
	}

	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Find(ctx, "u1", "fractions", "adds denominators")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("expected record")
	}
	if got.Strength != 5 || got.OccurrenceCount != 1 || got.Status != misconception.StatusActive {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.ResolvedAt != nil {
		t.Error("ResolvedAt should be nil")
	}

	// Save again with updated state — upsert, not a second row.
	rec.Strength = 6
	rec.OccurrenceCount = 2
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("second save: %v", err)
	}

	list, err := repo.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d records, want 1", len(list))
	}
	if list[0].Strength != 6 {
		t.Errorf("Strength = %d, want 6", list[0].Strength)
	}
}

func TestMisconceptionRepo_SaveClearsResolvedAt(t *testing.T) {
	s := openTestStore(t)
	repo := s.MisconceptionRepo()
	ctx := context.Background()

	observed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	resolved := observed.AddDate(0, 0, 5)
	rec := &misconception.Record{
		OwnerID:        "u1",
		Concept:        "decimals",
		Type:           "misplaces decimal point",
		Strength:       1,
		CorrectStreak:  5,
		Status:         misconception.StatusResolved,
		LastObservedAt: resolved,
		ResolvedAt:     &resolved,
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save resolved: %v", err)
	}

	// Regression to active clears the stored timestamp.
	rec.Status = misconception.StatusActive
	rec.CorrectStreak = 0
	rec.ResolvedAt = nil
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save regressed: %v", err)
	}

	got, err := repo.Find(ctx, "u1", "decimals", "misplaces decimal point")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ResolvedAt != nil {
		t.Errorf("ResolvedAt = %v, want nil after regression", got.ResolvedAt)
	}
}

func TestMisconceptionRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	repo := s.MisconceptionRepo()
	ctx := context.Background()

	rec := &misconception.Record{
		OwnerID:         "u1",
		Concept:         "percent",
		Type:            "confuses percent and percentage points",
		Strength:        5,
		OccurrenceCount: 1,
		Status:          misconception.StatusActive,
		LastObservedAt:  time.Now().UTC(),
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "u1", "percent", "confuses percent and percentage points"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.Find(ctx, "u1", "percent", "confuses percent and percentage points")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Error("expected record gone after delete")
	}
}

func TestReviewRepo_DueOrderingAndCap(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	save := func(concept string, priority int, next time.Time) {
		t.Helper()
		err := repo.Save(ctx, &spacedrep.ReviewItem{
			OwnerID:        "u1",
			ConceptID:      concept,
			Priority:       priority,
			NextReviewDate: next,
		})
		if err != nil {
			t.Fatalf("save %s: %v", concept, err)
		}
	}

	save("low-priority", 5, now.AddDate(0, 0, -3))
	save("urgent", 1, now.AddDate(0, 0, -1))
	save("not-due", 1, now.AddDate(0, 0, 4))
	save("medium", 3, now.AddDate(0, 0, -2))

	due, err := repo.Due(ctx, "u1", now)
	if err != nil {
		t.Fatalf("due: %v", err)
	}

	wantOrder := []string{"urgent", "medium", "low-priority"}
	if len(due) != len(wantOrder) {
		t.Fatalf("got %d items, want %d", len(due), len(wantOrder))
	}
	for i, want := range wantOrder {
		if due[i].ConceptID != want {
			t.Errorf("position %d: got %q, want %q", i, due[i].ConceptID, want)
		}
	}
}

func TestReviewRepo_SaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	item := &spacedrep.ReviewItem{
		OwnerID:        "u1",
		ConceptID:      "fractions",
		Priority:       2,
		NextReviewDate: now.AddDate(0, 0, 3),
	}
	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("save: %v", err)
	}

	item.Apply(spacedrep.ScheduleNext(now, 7, 3), now)
	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Find(ctx, "u1", "fractions")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("expected item")
	}
	if got.Priority != 3 {
		t.Errorf("Priority = %d, want 3", got.Priority)
	}
	if !got.NextReviewDate.Equal(now.AddDate(0, 0, 7)) {
		t.Errorf("NextReviewDate = %v", got.NextReviewDate)
	}
	if got.LastReviewDate == nil || !got.LastReviewDate.Equal(now) {
		t.Errorf("LastReviewDate = %v, want %v", got.LastReviewDate, now)
	}
}

func TestEventRepo_ObservationAndLLMShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendObservation(ctx, ObservationEventData{
		ObservationID: "obs-1",
		OwnerID:       "u1",
		Concept:       "fractions",
		Correct:       false,
		Confidence:    "high",
		LearningState: "high_confidence_wrong",
	})
	if err != nil {
		t.Fatalf("append observation: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock",
		Model:    "mock",
		Purpose:  "explanation",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d llm events, want 1", len(events))
	}
	// The observation consumed sequence 1, so the LLM event gets 2.
	got, err := s.EventRepo().GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get llm event: %v", err)
	}
	if got == nil || got.Purpose != "explanation" {
		t.Errorf("got %+v, want explanation event", got)
	}
}

func TestEventRepo_LLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "explanation",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d rows, want 1", len(usage))
	}
	if usage[0].Calls != 3 || usage[0].InputTokens != 300 || usage[0].OutputTokens != 150 {
		t.Errorf("aggregation mismatch: %+v", usage[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Errorf("model aggregation mismatch: %+v", byModel)
	}
}
