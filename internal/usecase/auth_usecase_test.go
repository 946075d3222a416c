package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusfound/internal/domain/entity"
	"campusfound/pkg/errors"
)

type fakeVerifier struct {
	email     string
	firstName string
	lastName  string
	err       error
}

func (v *fakeVerifier) Verify(ctx context.Context, idToken string) (string, string, string, error) {
	if v.err != nil {
		return "", "", "", v.err
	}
	return v.email, v.firstName, v.lastName, nil
}

func testAuthUseCase(verifier *fakeVerifier, users ...*entity.User) (*AuthUseCase, *memUserRepo) {
	userRepo := newMemUserRepo(users...)
	uc := NewAuthUseCase(
		userRepo,
		verifier,
		[]string{"security@campus.edu"},
		"campus.edu",
		[]string{"guest.lecturer@partner.org"},
	)
	return uc, userRepo
}

func TestLoginCreatesUserOnFirstLogin(t *testing.T) {
	uc, userRepo := testAuthUseCase(&fakeVerifier{
		email: "alice@campus.edu", firstName: "Alice", lastName: "Anders",
	})

	user, err := uc.Login(context.Background(), "token", entity.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "alice@campus.edu", user.Email)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, 1, userRepo.createCalls)
}

func TestLoginReusesExistingUser(t *testing.T) {
	uc, userRepo := testAuthUseCase(
		&fakeVerifier{email: "alice@campus.edu", firstName: "Alice"},
		&entity.User{ID: "user-9", Email: "alice@campus.edu", FirstName: "Alice", Role: entity.RoleUser},
	)

	user, err := uc.Login(context.Background(), "token", entity.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "user-9", user.ID)
	assert.Equal(t, 0, userRepo.createCalls)
	assert.Equal(t, 0, userRepo.updateCalls)
}

func TestLoginOverwritesRoleOnRoleSwitch(t *testing.T) {
	uc, userRepo := testAuthUseCase(
		&fakeVerifier{email: "security@campus.edu", firstName: "Sam"},
		&entity.User{ID: "user-1", Email: "security@campus.edu", FirstName: "Sam", Role: entity.RoleUser},
	)
	ctx := context.Background()

	user, err := uc.Login(ctx, "token", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, 1, userRepo.updateCalls)

	stored, err := userRepo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
}

func TestLoginAdminAllowList(t *testing.T) {
	uc, userRepo := testAuthUseCase(&fakeVerifier{
		email: "alice@campus.edu", firstName: "Alice",
	})

	_, err := uc.Login(context.Background(), "token", entity.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	// A rejected login never leaves a user record behind.
	assert.Equal(t, 0, userRepo.createCalls)
}

func TestLoginAdminAllowListIsCaseInsensitive(t *testing.T) {
	uc, _ := testAuthUseCase(&fakeVerifier{
		email: "Security@Campus.edu", firstName: "Sam",
	})

	user, err := uc.Login(context.Background(), "token", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestLoginUserDomainCheck(t *testing.T) {
	uc, userRepo := testAuthUseCase(&fakeVerifier{
		email: "mallory@gmail.com", firstName: "Mallory",
	})

	_, err := uc.Login(context.Background(), "token", entity.RoleUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Equal(t, 0, userRepo.createCalls)
}

func TestLoginUserAllowListBypassesDomainCheck(t *testing.T) {
	uc, _ := testAuthUseCase(&fakeVerifier{
		email: "guest.lecturer@partner.org", firstName: "Grace",
	})

	user, err := uc.Login(context.Background(), "token", entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	uc, _ := testAuthUseCase(&fakeVerifier{email: "alice@campus.edu"})

	_, err := uc.Login(context.Background(), "token", "superuser")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestLoginInvalidToken(t *testing.T) {
	uc, _ := testAuthUseCase(&fakeVerifier{err: fmt.Errorf("token expired")})

	_, err := uc.Login(context.Background(), "token", entity.RoleUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginRejectsTokenWithoutEmail(t *testing.T) {
	uc, _ := testAuthUseCase(&fakeVerifier{email: "", firstName: "Ghost"})

	_, err := uc.Login(context.Background(), "token", entity.RoleUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
