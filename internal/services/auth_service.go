// Package services – AuthService
//
// This file implements account lifecycle: signup, login, profile update, and
// self-service account deletion. Passwords are stored as bcrypt hashes; the
// plaintext never leaves this layer and the hash never leaves the domain
// model (its JSON tag suppresses serialization).
package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/domain"
	"github.com/tbourn/go-ai-backend/internal/repo"
)

// AuthService implements account registration and authentication.
type AuthService struct {
	// DB is the database handle used for account reads and writes.
	DB *gorm.DB
}

// NewAuthService constructs an AuthService bound to the given handle.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Signup registers a new account with the USER role. The password is hashed
// with bcrypt before it is stored. A duplicate email yields ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u, err := repo.CreateUser(ctx, s.DB, name, email, string(hash), domain.RoleUser)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the email/password pair and returns the matching account.
// Unknown email and wrong password are deliberately indistinguishable; both
// yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Update modifies an existing account. Empty fields are left untouched; a
// non-empty password is re-hashed before storage. A missing account yields
// ErrUserNotFound and changing the email to one already in use yields
// ErrEmailTaken.
func (s *AuthService) Update(ctx context.Context, id uint, name, email, password string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
	}

	if err := repo.SaveUser(ctx, s.DB, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Delete removes the account with the given id. The account's request
// history is retained. Deleting a nonexistent account is a no-op success.
func (s *AuthService) Delete(ctx context.Context, id uint) error {
	return repo.DeleteUser(ctx, s.DB, id)
}
