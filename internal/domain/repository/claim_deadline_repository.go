package repository

import (
	"context"
	"time"

	"campusfound/internal/domain/entity"
)

type ClaimDeadlineRepository interface {
	Create(ctx context.Context, deadline *entity.ClaimDeadline) error
	// ListDue returns deadlines whose fire time is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]*entity.ClaimDeadline, error)
	Delete(ctx context.Context, id string) error
}
