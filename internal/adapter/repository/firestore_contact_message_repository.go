package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
)

type firestoreContactMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreContactMessageRepository(client *firestore.Client) repository.ContactMessageRepository {
	return &firestoreContactMessageRepository{
		client: client,
	}
}

func (r *firestoreContactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	if message.ID == "" {
		message.ID = r.client.Collection("contactMessages").NewDoc().ID
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("contactMessages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to save contact message", err)
	}

	return nil
}
