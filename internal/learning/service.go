package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
	"github.com/Kairavparikh/quizwhiz/internal/misconception"
	"github.com/Kairavparikh/quizwhiz/internal/spacedrep"
	"github.com/Kairavparikh/quizwhiz/internal/store"
)

// Observation is one graded quiz answer as reported by the caller.
type Observation struct {
	OwnerID string

	// Concept is what the question tested, e.g. "quadratic-formula".
	Concept string

	// MisconceptionType names the error pattern behind a wrong answer,
	// e.g. "sign-error". Empty when the caller has no diagnosis; the
	// misconception ledger is only touched when it is set.
	MisconceptionType string

	Correct    bool
	Confidence learnstate.Confidence
}

// Outcome reports everything one observation produced.
type Outcome struct {
	ObservationID string
	State         learnstate.LearningState
	FollowUp      learnstate.Difficulty

	// Record is the misconception record after scoring or reinforcement.
	// Nil when the observation carried no misconception type, or when a
	// high-confidence correct answer had no existing record to reinforce.
	Record *misconception.Record

	Review *spacedrep.ReviewItem
}

// Service coordinates one observation through classification, misconception
// scoring and review scheduling, persisting each step.
type Service struct {
	misconceptions store.MisconceptionRepo
	reviews        store.ReviewRepo
	events         store.EventRepo
}

// NewService creates a learning service backed by the given repos.
func NewService(m store.MisconceptionRepo, r store.ReviewRepo, e store.EventRepo) *Service {
	return &Service{
		misconceptions: m,
		reviews:        r,
		events:         e,
	}
}

// Observe handles a single graded answer at the given time. It classifies the
// answer, updates the misconception ledger, reschedules the concept's review
// item and appends an observation event.
func (s *Service) Observe(ctx context.Context, obs Observation, now time.Time) (*Outcome, error) {
	if obs.OwnerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if obs.Concept == "" {
		return nil, fmt.Errorf("concept is required")
	}

	state := learnstate.Classify(obs.Correct, obs.Confidence)
	info := state.Info()

	out := &Outcome{
		ObservationID: uuid.NewString(),
		State:         state,
		FollowUp:      learnstate.FollowUpDifficulty(state),
	}

	if obs.MisconceptionType != "" {
		rec, err := s.scoreMisconception(ctx, obs, now)
		if err != nil {
			return nil, err
		}
		out.Record = rec
	}

	item, err := s.scheduleReview(ctx, obs, info, now)
	if err != nil {
		return nil, err
	}
	out.Review = item

	err = s.events.AppendObservation(ctx, store.ObservationEventData{
		ObservationID:     out.ObservationID,
		OwnerID:           obs.OwnerID,
		Concept:           obs.Concept,
		MisconceptionType: obs.MisconceptionType,
		Correct:           obs.Correct,
		Confidence:        string(obs.Confidence),
		LearningState:     string(state),
	})
	if err != nil {
		return nil, fmt.Errorf("append observation event: %w", err)
	}

	return out, nil
}

// scoreMisconception routes the observation into the scorer or the
// reinforcement path and persists the result.
func (s *Service) scoreMisconception(ctx context.Context, obs Observation, now time.Time) (*misconception.Record, error) {
	existing, err := s.misconceptions.Find(ctx, obs.OwnerID, obs.Concept, obs.MisconceptionType)
	if err != nil {
		return nil, fmt.Errorf("find misconception record: %w", err)
	}

	var rec *misconception.Record
	if misconception.ShouldScore(obs.Correct, obs.Confidence) {
		rec = misconception.RecordObservation(existing, obs.Correct, obs.Confidence, now)
	} else {
		// High-confidence correct answers reinforce existing records only.
		rec = misconception.Reinforce(existing, now)
	}
	if rec == nil {
		return nil, nil
	}
	rec.OwnerID = obs.OwnerID
	rec.Concept = obs.Concept
	rec.Type = obs.MisconceptionType

	if err := s.misconceptions.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save misconception record: %w", err)
	}
	return rec, nil
}

// scheduleReview upserts the review item for the observed concept.
func (s *Service) scheduleReview(ctx context.Context, obs Observation, info learnstate.Info, now time.Time) (*spacedrep.ReviewItem, error) {
	item, err := s.reviews.Find(ctx, obs.OwnerID, obs.Concept)
	if err != nil {
		return nil, fmt.Errorf("find review item: %w", err)
	}
	if item == nil {
		item = &spacedrep.ReviewItem{
			OwnerID:   obs.OwnerID,
			ConceptID: obs.Concept,
		}
	}

	sched := spacedrep.ScheduleNext(now, info.ReviewIntervalDays, info.Priority)
	item.Apply(sched, now)

	if err := s.reviews.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save review item: %w", err)
	}
	return item, nil
}

// DueReviews returns the learner's due review items, at most one session's
// worth, highest priority first.
func (s *Service) DueReviews(ctx context.Context, ownerID string, now time.Time) ([]*spacedrep.ReviewItem, error) {
	return s.reviews.Due(ctx, ownerID, now)
}
