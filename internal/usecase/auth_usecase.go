package usecase

import (
	"context"
	"strings"
	"time"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
	"campusfound/pkg/logger"
)

// AuthUseCase is the identity resolver: it turns an external identity token
// plus a requested role into a local user record, enforcing the per-role
// email allow-lists.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	verifier      TokenVerifier
	adminEmails   []string
	allowedDomain string
	allowedEmails []string
}

func NewAuthUseCase(userRepo repository.UserRepository, verifier TokenVerifier, adminEmails []string, allowedDomain string, allowedEmails []string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:      userRepo,
		verifier:      verifier,
		adminEmails:   adminEmails,
		allowedDomain: allowedDomain,
		allowedEmails: allowedEmails,
	}
}

func (uc *AuthUseCase) Login(ctx context.Context, idToken, role string) (*entity.User, error) {
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, errors.Validation("Invalid role", nil)
	}

	email, firstName, lastName, err := uc.verifier.Verify(ctx, idToken)
	if err != nil {
		logger.Warn("Identity token verification failed: %v", err)
		return nil, errors.Unauthorized("Invalid identity token", err)
	}
	if email == "" {
		return nil, errors.Unauthorized("Identity token carries no email", nil)
	}

	// Allow-list checks fail closed before any user record is touched.
	if role == entity.RoleAdmin && !containsEmail(uc.adminEmails, email) {
		return nil, errors.Validation("Invalid admin email", nil)
	}
	if role == entity.RoleUser && !uc.allowedUserEmail(email) {
		return nil, errors.Validation("Invalid email domain", nil)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, errors.Internal("Failed to look up user", err)
		}

		now := time.Now()
		user = &entity.User{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Internal("Failed to create user record", err)
		}
		return user, nil
	}

	// Repeat login with a different requested role overwrites the stored
	// role; last login wins.
	if user.Role != role {
		user.Role = role
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Internal("Failed to update user role", err)
		}
	}

	return user, nil
}

func (uc *AuthUseCase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *AuthUseCase) allowedUserEmail(email string) bool {
	if uc.allowedDomain != "" && strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(uc.allowedDomain)) {
		return true
	}
	return containsEmail(uc.allowedEmails, email)
}

func containsEmail(list []string, email string) bool {
	for _, candidate := range list {
		if strings.EqualFold(candidate, email) {
			return true
		}
	}
	return false
}
