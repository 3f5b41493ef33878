package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"finlog/internal/domain/entity"
	"finlog/internal/domain/repository"
	"finlog/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// AuthService handles credential registration and verification
type AuthService struct {
	users repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a credential record for the email. The password is
// stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &entity.ValidationError{Field: "email", Reason: "a valid email is required"}
	}
	if len(password) < 8 {
		return nil, &entity.ValidationError{Field: "password", Reason: "password must be at least 8 characters"}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Store(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the email/password pair against the credential store.
// Unknown email and wrong password both fail with
// entity.ErrInvalidCredentials so a caller cannot tell which check
// failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	return user, nil
}
