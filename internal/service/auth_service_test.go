package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairhub/internal/config"
	"github.com/spec-kit/repairhub/internal/domain"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

func newTestAuthService(users *fakeUserRepo) *AuthService {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLMinutes = 60
	cfg.Auth.BcryptCost = 4
	return NewAuthService(cfg, users)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	room := "A-101"
	user, token, exp, err := svc.Register(context.Background(), RegisterInput{
		Name:       "Asha",
		Email:      "asha@example.com",
		Password:   "hunter22",
		Role:       "student",
		RoomNumber: &room,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	loggedIn, token, _, err := svc.Login(context.Background(), "asha@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
		Role:     "ADMIN",
	})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22", Role: "STUDENT",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), RegisterInput{
		Name: "Other", Email: "asha@example.com", Password: "different", Role: "STUDENT",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
	assert.Len(t, users.users, 1)
}

func TestAuthService_LoginFailures(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22", Role: "STUDENT",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	require.Error(t, err)
	notFound := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", notFound.Code)
	assert.Equal(t, "user not found", notFound.Message)

	_, _, _, err = svc.Login(context.Background(), "asha@example.com", "wrong")
	require.Error(t, err)
	badPass := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", badPass.Code)
	assert.Equal(t, "invalid password", badPass.Message)
}

func TestAuthService_UpdateProfilePartial(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	phone := "555-0100"
	user, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22", Role: "STUDENT",
		PhoneNumber: &phone,
	})
	require.NoError(t, err)

	newName := "Asha K"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "555-0100", *updated.PhoneNumber)
}

func TestAuthService_UpdateProfileUnknownUser(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	name := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), "missing", ProfileUpdateInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
