package repository

import (
	"context"

	"campusfound/internal/domain/entity"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
}
