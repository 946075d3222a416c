package usecase

import (
	"context"
	"time"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
)

type LogUseCase struct {
	adminLogRepo repository.AdminLogRepository
	userLogRepo  repository.UserLogRepository
}

func NewLogUseCase(adminLogRepo repository.AdminLogRepository, userLogRepo repository.UserLogRepository) *LogUseCase {
	return &LogUseCase{
		adminLogRepo: adminLogRepo,
		userLogRepo:  userLogRepo,
	}
}

func (uc *LogUseCase) SaveAdminLog(ctx context.Context, adminID, action string) error {
	return uc.adminLogRepo.Create(ctx, &entity.AdminLog{
		AdminID:   adminID,
		Action:    action,
		Timestamp: time.Now(),
	})
}

func (uc *LogUseCase) ListAdminLogs(ctx context.Context) ([]*entity.AdminLog, error) {
	return uc.adminLogRepo.List(ctx)
}

func (uc *LogUseCase) SaveUserLog(ctx context.Context, userID, userEmail, action string, timestamp time.Time) error {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return uc.userLogRepo.Create(ctx, &entity.UserLog{
		UserID:    userID,
		UserEmail: userEmail,
		Action:    action,
		Timestamp: timestamp,
	})
}

func (uc *LogUseCase) ListUserLogs(ctx context.Context) ([]*entity.UserLog, error) {
	return uc.userLogRepo.List(ctx)
}

func (uc *LogUseCase) ListUserLogsByUser(ctx context.Context, userID string) ([]*entity.UserLog, error) {
	return uc.userLogRepo.ListByUser(ctx, userID)
}
