package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
)

type firestoreClaimDeadlineRepository struct {
	client *firestore.Client
}

func NewFirestoreClaimDeadlineRepository(client *firestore.Client) repository.ClaimDeadlineRepository {
	return &firestoreClaimDeadlineRepository{
		client: client,
	}
}

func (r *firestoreClaimDeadlineRepository) Create(ctx context.Context, deadline *entity.ClaimDeadline) error {
	if deadline.ID == "" {
		deadline.ID = r.client.Collection("claimDeadlines").NewDoc().ID
	}
	if deadline.CreatedAt.IsZero() {
		deadline.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("claimDeadlines").Doc(deadline.ID).Set(ctx, deadline)
	if err != nil {
		return errors.Internal("Failed to save claim deadline", err)
	}

	return nil
}

func (r *firestoreClaimDeadlineRepository) ListDue(ctx context.Context, now time.Time) ([]*entity.ClaimDeadline, error) {
	iter := r.client.Collection("claimDeadlines").
		Where("fireAt", "<=", now).
		OrderBy("fireAt", firestore.Asc).
		Documents(ctx)

	var deadlines []*entity.ClaimDeadline
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate claim deadlines", err)
		}

		var deadline entity.ClaimDeadline
		if err := doc.DataTo(&deadline); err != nil {
			return nil, errors.Internal("Failed to parse claim deadline data", err)
		}
		deadlines = append(deadlines, &deadline)
	}

	return deadlines, nil
}

func (r *firestoreClaimDeadlineRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("claimDeadlines").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete claim deadline", err)
	}

	return nil
}
