package usecase

import (
	"context"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// UpdateProfile changes name fields only; role and email are never editable
// through this path.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id, firstName, lastName string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
