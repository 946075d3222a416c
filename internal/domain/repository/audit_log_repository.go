package repository

import (
	"context"

	"campusfound/internal/domain/entity"
)

type AdminLogRepository interface {
	Create(ctx context.Context, log *entity.AdminLog) error
	List(ctx context.Context) ([]*entity.AdminLog, error)
}

type UserLogRepository interface {
	Create(ctx context.Context, log *entity.UserLog) error
	List(ctx context.Context) ([]*entity.UserLog, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.UserLog, error)
}
