package store

import (
	"context"
	"fmt"

	"github.com/Kairavparikh/quizwhiz/ent"
	entmisconception "github.com/Kairavparikh/quizwhiz/ent/misconception"
	"github.com/Kairavparikh/quizwhiz/internal/misconception"
)

// misconceptionRepo implements MisconceptionRepo using the ent client.
type misconceptionRepo struct {
	client *ent.Client
}

func (r *misconceptionRepo) Find(ctx context.Context, ownerID, concept, misconceptionType string) (*misconception.Record, error) {
	m, err := r.client.Misconception.Query().
		Where(
			entmisconception.OwnerID(ownerID),
			entmisconception.Concept(concept),
			entmisconception.MisconceptionType(misconceptionType),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query misconception: %w", err)
	}
	return toRecord(m), nil
}

func (r *misconceptionRepo) Save(ctx context.Context, rec *misconception.Record) error {
	existing, err := r.client.Misconception.Query().
		Where(
			entmisconception.OwnerID(rec.OwnerID),
			entmisconception.Concept(rec.Concept),
			entmisconception.MisconceptionType(rec.Type),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query misconception for save: %w", err)
	}

	if existing == nil {
		_, err = r.client.Misconception.Create().
			SetOwnerID(rec.OwnerID).
			SetConcept(rec.Concept).
			SetMisconceptionType(rec.Type).
			SetStrength(rec.Strength).
			SetOccurrenceCount(rec.OccurrenceCount).
			SetCorrectStreak(rec.CorrectStreak).
			SetStatus(string(rec.Status)).
			SetLastObservedAt(rec.LastObservedAt).
			SetNillableResolvedAt(rec.ResolvedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create misconception: %w", err)
		}
		return nil
	}

	upd := existing.Update().
		SetStrength(rec.Strength).
		SetOccurrenceCount(rec.OccurrenceCount).
		SetCorrectStreak(rec.CorrectStreak).
		SetStatus(string(rec.Status)).
		SetLastObservedAt(rec.LastObservedAt)
	if rec.ResolvedAt != nil {
		upd.SetResolvedAt(*rec.ResolvedAt)
	} else {
		upd.ClearResolvedAt()
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update misconception: %w", err)
	}
	return nil
}

func (r *misconceptionRepo) ListByOwner(ctx context.Context, ownerID string) ([]*misconception.Record, error) {
	ms, err := r.client.Misconception.Query().
		Where(entmisconception.OwnerID(ownerID)).
		Order(
			ent.Desc(entmisconception.FieldStrength),
			ent.Asc(entmisconception.FieldConcept),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list misconceptions: %w", err)
	}

	records := make([]*misconception.Record, len(ms))
	for i, m := range ms {
		records[i] = toRecord(m)
	}
	return records, nil
}

func (r *misconceptionRepo) Delete(ctx context.Context, ownerID, concept, misconceptionType string) error {
	_, err := r.client.Misconception.Delete().
		Where(
			entmisconception.OwnerID(ownerID),
			entmisconception.Concept(concept),
			entmisconception.MisconceptionType(misconceptionType),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete misconception: %w", err)
	}
	return nil
}

func toRecord(m *ent.Misconception) *misconception.Record {
	return &misconception.Record{
		OwnerID:         m.OwnerID,
		Concept:         m.Concept,
		Type:            m.MisconceptionType,
		Strength:        m.Strength,
		OccurrenceCount: m.OccurrenceCount,
		CorrectStreak:   m.CorrectStreak,
		Status:          misconception.Status(m.Status),
		LastObservedAt:  m.LastObservedAt,
		ResolvedAt:      m.ResolvedAt,
	}
}
