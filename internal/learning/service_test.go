package learning

import (
	"context"
	"testing"
	"time"

	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
	"github.com/Kairavparikh/quizwhiz/internal/misconception"
	"github.com/Kairavparikh/quizwhiz/internal/spacedrep"
	"github.com/Kairavparikh/quizwhiz/internal/store"
)

type fakeMisconceptionRepo struct {
	records map[string]*misconception.Record
}

func newFakeMisconceptionRepo() *fakeMisconceptionRepo {
	return &fakeMisconceptionRepo{records: make(map[string]*misconception.Record)}
}

func mkey(owner, concept, typ string) string { return owner + "|" + concept + "|" + typ }

func (f *fakeMisconceptionRepo) Find(_ context.Context, owner, concept, typ string) (*misconception.Record, error) {
	if rec, ok := f.records[mkey(owner, concept, typ)]; ok {
		return rec.Clone(), nil
	}
	return nil, nil
}

func (f *fakeMisconceptionRepo) Save(_ context.Context, rec *misconception.Record) error {
	f.records[mkey(rec.OwnerID, rec.Concept, rec.Type)] = rec.Clone()
	return nil
}

func (f *fakeMisconceptionRepo) ListByOwner(_ context.Context, owner string) ([]*misconception.Record, error) {
	var out []*misconception.Record
	for _, rec := range f.records {
		if rec.OwnerID == owner {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

func (f *fakeMisconceptionRepo) Delete(_ context.Context, owner, concept, typ string) error {
	delete(f.records, mkey(owner, concept, typ))
	return nil
}

type fakeReviewRepo struct {
	items map[string]*spacedrep.ReviewItem
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{items: make(map[string]*spacedrep.ReviewItem)}
}

func (f *fakeReviewRepo) Find(_ context.Context, owner, concept string) (*spacedrep.ReviewItem, error) {
	if it, ok := f.items[owner+"|"+concept]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReviewRepo) Save(_ context.Context, item *spacedrep.ReviewItem) error {
	cp := *item
	f.items[item.OwnerID+"|"+item.ConceptID] = &cp
	return nil
}

func (f *fakeReviewRepo) Due(_ context.Context, owner string, now time.Time) ([]*spacedrep.ReviewItem, error) {
	var all []*spacedrep.ReviewItem
	for _, it := range f.items {
		if it.OwnerID == owner {
			cp := *it
			all = append(all, &cp)
		}
	}
	return spacedrep.DueItems(all, now), nil
}

type fakeEventRepo struct {
	observations []store.ObservationEventData
	llmEvents    []store.LLMRequestEventData
}

func (f *fakeEventRepo) AppendObservation(_ context.Context, data store.ObservationEventData) error {
	f.observations = append(f.observations, data)
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llmEvents = append(f.llmEvents, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func newTestService() (*Service, *fakeMisconceptionRepo, *fakeReviewRepo, *fakeEventRepo) {
	m := newFakeMisconceptionRepo()
	r := newFakeReviewRepo()
	e := &fakeEventRepo{}
	return NewService(m, r, e), m, r, e
}

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestObserve_WrongAnswerCreatesRecordAndSchedule(t *testing.T) {
	svc, _, _, events := newTestService()

	out, err := svc.Observe(context.Background(), Observation{
		OwnerID:           "u-1",
		Concept:           "fractions",
		MisconceptionType: "inverted-numerator",
		Correct:           false,
		Confidence:        learnstate.ConfidenceHigh,
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.State != learnstate.StateHighConfidenceWrong {
		t.Errorf("state = %q, want high_confidence_wrong", out.State)
	}
	if out.FollowUp != learnstate.DifficultySame {
		t.Errorf("follow-up = %q, want same", out.FollowUp)
	}
	if out.ObservationID == "" {
		t.Error("observation ID should be set")
	}

	if out.Record == nil {
		t.Fatal("expected a misconception record")
	}
	if out.Record.Strength != misconception.InitialStrength {
		t.Errorf("strength = %d, want %d", out.Record.Strength, misconception.InitialStrength)
	}
	if out.Record.Status != misconception.StatusActive {
		t.Errorf("status = %q, want active", out.Record.Status)
	}

	if out.Review == nil {
		t.Fatal("expected a review item")
	}
	// High-confidence wrong: 1-day interval, priority 1.
	wantDate := testNow.AddDate(0, 0, 1)
	if !out.Review.NextReviewDate.Equal(wantDate) {
		t.Errorf("next review = %v, want %v", out.Review.NextReviewDate, wantDate)
	}
	if out.Review.Priority != 1 {
		t.Errorf("priority = %d, want 1", out.Review.Priority)
	}

	if len(events.observations) != 1 {
		t.Fatalf("expected 1 observation event, got %d", len(events.observations))
	}
	ev := events.observations[0]
	if ev.LearningState != string(learnstate.StateHighConfidenceWrong) {
		t.Errorf("event state = %q, want high_confidence_wrong", ev.LearningState)
	}
	if ev.ObservationID != out.ObservationID {
		t.Error("event observation ID should match outcome")
	}
}

func TestObserve_HighConfidenceCorrectDoesNotCreateRecord(t *testing.T) {
	svc, repo, _, _ := newTestService()

	out, err := svc.Observe(context.Background(), Observation{
		OwnerID:           "u-1",
		Concept:           "fractions",
		MisconceptionType: "inverted-numerator",
		Correct:           true,
		Confidence:        learnstate.ConfidenceHigh,
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Record != nil {
		t.Error("high-confidence correct with no existing record must not create one")
	}
	if len(repo.records) != 0 {
		t.Errorf("expected no persisted records, got %d", len(repo.records))
	}

	// Review item is still scheduled: 14-day interval, priority 5.
	wantDate := testNow.AddDate(0, 0, 14)
	if !out.Review.NextReviewDate.Equal(wantDate) {
		t.Errorf("next review = %v, want %v", out.Review.NextReviewDate, wantDate)
	}
	if out.Review.Priority != 5 {
		t.Errorf("priority = %d, want 5", out.Review.Priority)
	}
}

func TestObserve_HighConfidenceCorrectReinforcesExisting(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	// Seed a record with a wrong answer.
	_, err := svc.Observe(ctx, Observation{
		OwnerID:           "u-1",
		Concept:           "fractions",
		MisconceptionType: "inverted-numerator",
		Correct:           false,
		Confidence:        learnstate.ConfidenceLow,
	}, testNow)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := svc.Observe(ctx, Observation{
		OwnerID:           "u-1",
		Concept:           "fractions",
		MisconceptionType: "inverted-numerator",
		Correct:           true,
		Confidence:        learnstate.ConfidenceHigh,
	}, testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Record == nil {
		t.Fatal("reinforcement should return the updated record")
	}
	if out.Record.Strength != misconception.InitialStrength-1 {
		t.Errorf("strength = %d, want %d", out.Record.Strength, misconception.InitialStrength-1)
	}
	if out.Record.CorrectStreak != 1 {
		t.Errorf("streak = %d, want 1", out.Record.CorrectStreak)
	}
}

func TestObserve_NoMisconceptionTypeSkipsLedger(t *testing.T) {
	svc, repo, _, events := newTestService()

	out, err := svc.Observe(context.Background(), Observation{
		OwnerID:    "u-1",
		Concept:    "fractions",
		Correct:    false,
		Confidence: learnstate.ConfidenceLow,
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Record != nil {
		t.Error("no misconception type given, record should be nil")
	}
	if len(repo.records) != 0 {
		t.Error("no record should be persisted")
	}
	if out.Review == nil {
		t.Error("review item should still be scheduled")
	}
	if len(events.observations) != 1 {
		t.Error("observation event should still be appended")
	}
}

func TestObserve_RepeatUpdatesExistingReviewItem(t *testing.T) {
	svc, _, reviews, _ := newTestService()
	ctx := context.Background()

	// Wrong with high confidence: priority 1, 1 day out.
	if _, err := svc.Observe(ctx, Observation{
		OwnerID: "u-1", Concept: "fractions",
		Correct: false, Confidence: learnstate.ConfidenceHigh,
	}, testNow); err != nil {
		t.Fatal(err)
	}

	// Later correct with high confidence: same item moves to priority 5, 14 days.
	later := testNow.AddDate(0, 0, 1)
	out, err := svc.Observe(ctx, Observation{
		OwnerID: "u-1", Concept: "fractions",
		Correct: true, Confidence: learnstate.ConfidenceHigh,
	}, later)
	if err != nil {
		t.Fatal(err)
	}

	if len(reviews.items) != 1 {
		t.Fatalf("expected a single review item, got %d", len(reviews.items))
	}
	if out.Review.Priority != 5 {
		t.Errorf("priority = %d, want 5", out.Review.Priority)
	}
	wantDate := later.AddDate(0, 0, 14)
	if !out.Review.NextReviewDate.Equal(wantDate) {
		t.Errorf("next review = %v, want %v", out.Review.NextReviewDate, wantDate)
	}
	if out.Review.LastReviewDate == nil || !out.Review.LastReviewDate.Equal(later) {
		t.Error("last review date should record the observation time")
	}
}

func TestObserve_ValidatesInput(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.Observe(context.Background(), Observation{Concept: "x"}, testNow); err == nil {
		t.Error("expected error for missing owner ID")
	}
	if _, err := svc.Observe(context.Background(), Observation{OwnerID: "u-1"}, testNow); err == nil {
		t.Error("expected error for missing concept")
	}
}

func TestDueReviews_ReturnsSessionOrdered(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	// Three concepts in different states, all observed a month ago so
	// everything is due.
	past := testNow.AddDate(0, -1, 0)
	obs := []Observation{
		// Priorities 5, 1 and 3 respectively.
		{OwnerID: "u-1", Concept: "solid", Correct: true, Confidence: learnstate.ConfidenceHigh},
		{OwnerID: "u-1", Concept: "misconceived", Correct: false, Confidence: learnstate.ConfidenceHigh},
		{OwnerID: "u-1", Concept: "fragile", Correct: true, Confidence: learnstate.ConfidenceLow},
	}
	for _, o := range obs {
		if _, err := svc.Observe(ctx, o, past); err != nil {
			t.Fatal(err)
		}
	}

	due, err := svc.DueReviews(ctx, "u-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 3 {
		t.Fatalf("expected 3 due items, got %d", len(due))
	}
	if due[0].ConceptID != "misconceived" || due[1].ConceptID != "fragile" || due[2].ConceptID != "solid" {
		t.Errorf("wrong order: %s, %s, %s", due[0].ConceptID, due[1].ConceptID, due[2].ConceptID)
	}
}
