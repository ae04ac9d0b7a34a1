package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/service"
	"github.com/mealfinder/backend/internal/testhelpers"
)

func TestRegister(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db)

	user, err := svc.Register(context.Background(), "chef", "chef@example.com", "password123")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "chef", user.Username)
	assert.Equal(t, "chef@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestRegisterNormalizesInput(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db)

	user, err := svc.Register(context.Background(), "  chef  ", "  Chef@Example.COM  ", "password123")
	require.NoError(t, err)

	assert.Equal(t, "chef", user.Username)
	assert.Equal(t, "chef@example.com", user.Email)
}

func TestRegisterValidation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short username", "ab", "a@example.com", "password123"},
		{"whitespace username", "  a  ", "a@example.com", "password123"},
		{"short password", "chef", "a@example.com", "12345"},
		{"email without at sign", "chef", "not-an-email", "password123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestRegisterConflicts(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, "chef", "chef@example.com", "password123")
	require.NoError(t, err)

	// Same username, different email.
	_, err = svc.Register(ctx, "chef", "other@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	// Same email (different case), different username.
	_, err = svc.Register(ctx, "anotherchef", "CHEF@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	// The conflict message must not name the colliding column.
	assert.Equal(t, "username or email already exists", err.Error())
}

func TestAuthenticate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "chef", "chef@example.com", "password123")
	require.NoError(t, err)

	// By username.
	user, err := svc.Authenticate(ctx, "chef", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// By email, case-insensitive.
	user, err = svc.Authenticate(ctx, "CHEF@EXAMPLE.COM", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticateFailures(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, "chef", "chef@example.com", "password123")
	require.NoError(t, err)

	// Username match is case-sensitive.
	_, err = svc.Authenticate(ctx, "CHEF", "password123")
	require.Error(t, err)
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))

	// Wrong password and unknown user yield the same generic message.
	_, badPass := svc.Authenticate(ctx, "chef", "wrong-password")
	_, noUser := svc.Authenticate(ctx, "nobody", "password123")
	require.Error(t, badPass)
	require.Error(t, noUser)
	assert.Equal(t, badPass.Error(), noUser.Error())
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(badPass))
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(noUser))
}

func TestFindByID(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "chef", "chef@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.FindByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "chef", user.Username)

	_, err = svc.FindByID(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
