package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/models"
)

// AuthService owns user records: registration, credential checks and
// lookups. Token handling lives in TokenService.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register validates and creates a new user. The username/email unique
// indexes are the source of truth for conflicts; a duplicate key on
// either column is reported as one conflict without naming the column.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 {
		return nil, apperror.Validation("username must be at least 3 characters long")
	}
	if len(password) < 6 {
		return nil, apperror.Validation("password must be at least 6 characters long")
	}
	if !strings.Contains(email, "@") {
		return nil, apperror.Validation("invalid email format")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("username or email already exists")
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to create user", err)
	}

	return &user, nil
}

// Authenticate resolves a user by exact username or lowercased email and
// checks the password. Failures never reveal which part was wrong.
func (s *AuthService) Authenticate(ctx context.Context, usernameOrEmail, password string) (*models.User, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)

	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", usernameOrEmail, strings.ToLower(usernameOrEmail)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Auth("invalid username/email or password")
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Auth("invalid username/email or password")
	}

	return &user, nil
}

// FindByID fetches a user by primary key.
func (s *AuthService) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to look up user", err)
	}
	return &user, nil
}
