// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (ETag generation) in the HTTP layer.
// Each function is context-aware and safe to call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/domain"
)

// RequestsStats returns aggregate metadata for a user's AI request history:
// the total number of rows and the maximum CreatedAt timestamp among those
// rows.
//
// It executes two lightweight queries against the ai_requests table scoped
// to the provided userID. When the user has no history, the returned count
// is 0 and maxCreatedAt is nil.
//
// Return values:
//   - count:        total requests for userID
//   - maxCreatedAt: pointer to the greatest CreatedAt, or nil if no rows
//   - err:          database error, if any
func RequestsStats(ctx context.Context, db *gorm.DB, userID uint) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.AIRequest{}).Where("user_id = ?", userID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
