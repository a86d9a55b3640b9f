package store

import (
	"context"
	"time"

	"github.com/Kairavparikh/quizwhiz/internal/misconception"
	"github.com/Kairavparikh/quizwhiz/internal/spacedrep"
)

// MisconceptionRepo manages persisted misconception records.
// The scoring logic itself lives in internal/misconception; this repo only
// finds and saves records keyed by the (owner, concept, type) triple.
type MisconceptionRepo interface {
	// Find returns the record for the identity triple, or nil if none exists.
	Find(ctx context.Context, ownerID, concept, misconceptionType string) (*misconception.Record, error)

	// Save upserts a record under its identity triple.
	Save(ctx context.Context, rec *misconception.Record) error

	// ListByOwner returns all of a learner's records, strongest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*misconception.Record, error)

	// Delete removes a record. Explicit owner-initiated removal is the only
	// deletion path.
	Delete(ctx context.Context, ownerID, concept, misconceptionType string) error
}

// ReviewRepo manages persisted spaced repetition items.
type ReviewRepo interface {
	// Find returns the item for (owner, concept), or nil if none exists.
	Find(ctx context.Context, ownerID, conceptID string) (*spacedrep.ReviewItem, error)

	// Save upserts an item under its identity pair.
	Save(ctx context.Context, item *spacedrep.ReviewItem) error

	// Due returns items with next_review_date <= now, ordered by ascending
	// priority then next review date, capped at spacedrep.SessionSize.
	Due(ctx context.Context, ownerID string, now time.Time) ([]*spacedrep.ReviewItem, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// ObservationEventData captures one graded answer observation.
type ObservationEventData struct {
	ObservationID     string
	OwnerID           string
	Concept           string
	MisconceptionType string
	Correct           bool
	Confidence        string
	LearningState     string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendObservation records a graded answer observation.
	AppendObservation(ctx context.Context, data ObservationEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
