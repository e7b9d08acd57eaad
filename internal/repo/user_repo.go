// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/domain"
)

// ErrDuplicateEmail indicates that a user row with the same email already
// exists (unique index violation).
var ErrDuplicateEmail = errors.New("duplicate email")

// CreateUser inserts a new user row. The password must already be hashed by
// the caller. A unique-index violation on email is mapped to
// ErrDuplicateEmail.
func CreateUser(ctx context.Context, db *gorm.DB, name, email, passwordHash string, role domain.Role) (*domain.User, error) {
	u := &domain.User{
		Name:     name,
		Email:    email,
		Password: passwordHash,
		Role:     role,
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

// GetUser fetches a user by ID, returning ErrNotFound when absent.
func GetUser(ctx context.Context, db *gorm.DB, id uint) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail fetches a user by email, returning ErrNotFound when absent.
func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveUser persists changes to an existing user row.
func SaveUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	err := db.WithContext(ctx).Save(u).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

// CountUsers returns the total number of registered users.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}

// CountUsersByRole returns the number of users holding the given role.
func CountUsersByRole(ctx context.Context, db *gorm.DB, role domain.Role) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("role = ?", string(role)).
		Count(&total).Error
	return total, err
}

// ListUsersPage returns a paginated slice of users ordered by id ascending,
// the ordering the admin listing exposes.
func ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateUserRole sets the role of the user identified by id. It returns
// ErrNotFound when no row was affected (user missing).
func UpdateUserRole(ctx context.Context, db *gorm.DB, id uint, role domain.Role) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("role", string(role))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUser removes the user with the given id. Idempotent: deleting an
// absent id is a no-op success. The user's AIRequest rows are intentionally
// retained (orphan-tolerant; admin listings degrade the owner email to
// "Unknown").
func DeleteUser(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&domain.User{}, id).Error
}

// isUniqueViolation detects unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
