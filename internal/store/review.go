package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Kairavparikh/quizwhiz/ent"
	entreviewitem "github.com/Kairavparikh/quizwhiz/ent/reviewitem"
	"github.com/Kairavparikh/quizwhiz/internal/spacedrep"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Find(ctx context.Context, ownerID, conceptID string) (*spacedrep.ReviewItem, error) {
	it, err := r.client.ReviewItem.Query().
		Where(
			entreviewitem.OwnerID(ownerID),
			entreviewitem.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query review item: %w", err)
	}
	return toReviewItem(it), nil
}

func (r *reviewRepo) Save(ctx context.Context, item *spacedrep.ReviewItem) error {
	existing, err := r.client.ReviewItem.Query().
		Where(
			entreviewitem.OwnerID(item.OwnerID),
			entreviewitem.ConceptID(item.ConceptID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query review item for save: %w", err)
	}

	if existing == nil {
		_, err = r.client.ReviewItem.Create().
			SetOwnerID(item.OwnerID).
			SetConceptID(item.ConceptID).
			SetPriority(item.Priority).
			SetNextReviewDate(item.NextReviewDate).
			SetNillableLastReviewDate(item.LastReviewDate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create review item: %w", err)
		}
		return nil
	}

	upd := existing.Update().
		SetPriority(item.Priority).
		SetNextReviewDate(item.NextReviewDate)
	if item.LastReviewDate != nil {
		upd.SetLastReviewDate(*item.LastReviewDate)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update review item: %w", err)
	}
	return nil
}

func (r *reviewRepo) Due(ctx context.Context, ownerID string, now time.Time) ([]*spacedrep.ReviewItem, error) {
	its, err := r.client.ReviewItem.Query().
		Where(
			entreviewitem.OwnerID(ownerID),
			entreviewitem.NextReviewDateLTE(now),
		).
		Order(
			ent.Asc(entreviewitem.FieldPriority),
			ent.Asc(entreviewitem.FieldNextReviewDate),
			ent.Asc(entreviewitem.FieldConceptID),
		).
		Limit(spacedrep.SessionSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due items: %w", err)
	}

	items := make([]*spacedrep.ReviewItem, len(its))
	for i, it := range its {
		items[i] = toReviewItem(it)
	}
	return items, nil
}

func toReviewItem(it *ent.ReviewItem) *spacedrep.ReviewItem {
	return &spacedrep.ReviewItem{
		OwnerID:        it.OwnerID,
		ConceptID:      it.ConceptID,
		Priority:       it.Priority,
		NextReviewDate: it.NextReviewDate,
		LastReviewDate: it.LastReviewDate,
	}
}
