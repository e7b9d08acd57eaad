// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the AIRequest
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Ordering: history and admin listings read in recency order, "created_at
// DESC, id DESC". Creation order is monotonic with id, so the id tiebreak
// keeps pages deterministic when several rows share a timestamp.
//
// Error semantics:
//   - DeleteRequest is idempotent; deleting an absent id is a no-op success.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateRequest inserts a new AIRequest row owned by userID. CreatedAt is
// assigned by the server in UTC and is immutable afterwards. The action is
// stored exactly as supplied.
func CreateRequest(ctx context.Context, db *gorm.DB, userID uint, inputText, action, output string) (*domain.AIRequest, error) {
	r := &domain.AIRequest{
		InputText: inputText,
		Action:    action,
		Output:    output,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// CountRequests returns the total number of requests owned by userID.
func CountRequests(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AIRequest{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListRequestsPage returns a paginated slice of requests owned by userID,
// most recent first. An offset past the end yields an empty slice, not an
// error. The caller computes offset and limit (e.g. page*pageSize).
func ListRequestsPage(ctx context.Context, db *gorm.DB, userID uint, offset, limit int) ([]domain.AIRequest, error) {
	var out []domain.AIRequest
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountAllRequests returns the total number of requests across all owners.
func CountAllRequests(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AIRequest{}).
		Count(&total).Error
	return total, err
}

// ListAllRequestsPage returns a paginated slice of requests across all
// owners, most recent first. Used by the admin surface.
func ListAllRequestsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.AIRequest, error) {
	var out []domain.AIRequest
	err := db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetRequest fetches a request by ID, returning ErrNotFound when absent.
func GetRequest(ctx context.Context, db *gorm.DB, id uint) (*domain.AIRequest, error) {
	var r domain.AIRequest
	if err := db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRequest removes the request with the given id. The delete is
// idempotent: removing an id that does not exist is a successful no-op.
func DeleteRequest(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&domain.AIRequest{}, id).Error
}
