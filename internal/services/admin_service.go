// Package services – AdminService
//
// This file implements the administrative surface: user management, request
// management, and usage analytics. Every operation passes through
// RequireAdmin first — a synchronous, side-effect-free check that the caller
// id belongs to a user holding the ADMIN role — before any read or mutation
// proceeds.
//
// The request listing performs a tolerant join: each entry is enriched with
// the owning user's email, degrading to the literal "Unknown" when the owner
// no longer exists, so a dangling owner reference never fails the page.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/domain"
	"github.com/tbourn/go-ai-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UnknownOwnerEmail is the email shown for requests whose owner was deleted.
const UnknownOwnerEmail = "Unknown"

// AdminRequestEntry is the admin view of a processed request: the full row
// plus the owner's email (or UnknownOwnerEmail for orphaned rows).
type AdminRequestEntry struct {
	ID        uint      `json:"id"`
	InputText string    `json:"input_text"`
	Action    string    `json:"action"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
	UserEmail string    `json:"user_email"`
}

// Analytics aggregates usage counts. The three underlying reads are not
// atomic with respect to one another; minor skew under concurrent writes is
// acceptable, but TotalNormalUsers is always derived as
// TotalUsers - TotalAdmins so the identity holds for any snapshot.
type Analytics struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalRequests    int64 `json:"totalRequests"`
	TotalAdmins      int64 `json:"totalAdmins"`
	TotalNormalUsers int64 `json:"totalNormalUsers"`
}

// AdminService implements the gated administrative operations.
type AdminService struct {
	// DB is the database handle used for all administrative reads and writes.
	DB *gorm.DB
}

// NewAdminService constructs an AdminService bound to the given handle.
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// RequireAdmin validates that adminID identifies a user with the ADMIN role.
// It returns ErrAdminNotFound when no such user exists and ErrAccessDenied
// when the user exists with any other role. It performs exactly one read and
// has no side effects.
func (s *AdminService) RequireAdmin(ctx context.Context, adminID uint) error {
	u, err := repo.GetUser(ctx, s.DB, adminID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	if !u.Role.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}

// ListUsers returns a page of all users ordered by id ascending, plus the
// total count. page is zero-based; pageSize <= 0 is coerced to 5.
func (s *AdminService) ListUsers(ctx context.Context, adminID uint, page, pageSize int) ([]domain.User, int64, error) {
	tr := otel.Tracer("services/AdminService")
	ctx, span := tr.Start(ctx, "ListUsers",
		trace.WithAttributes(attribute.Int64("admin.id", int64(adminID))),
	)
	defer span.End()

	if err := s.RequireAdmin(ctx, adminID); err != nil {
		return nil, 0, err
	}

	page, pageSize = clampZeroBased(page, pageSize)

	total, err := repo.CountUsers(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	users, err := repo.ListUsersPage(ctx, s.DB, page*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// DeleteUser removes the user with the given id. An administrator may not
// delete itself (ErrSelfDelete). Deleting a nonexistent user is a no-op
// success; the target's request history is retained either way.
func (s *AdminService) DeleteUser(ctx context.Context, adminID, id uint) error {
	if err := s.RequireAdmin(ctx, adminID); err != nil {
		return err
	}
	if id == adminID {
		return ErrSelfDelete
	}
	return repo.DeleteUser(ctx, s.DB, id)
}

// ChangeRole sets the target user's role. The supplied value is translated
// through domain.ParseRole (case-insensitive); values outside {USER, ADMIN}
// are rejected with ErrInvalidRole rather than stored as free text. A missing
// target yields ErrUserNotFound.
func (s *AdminService) ChangeRole(ctx context.Context, adminID, id uint, role string) error {
	if err := s.RequireAdmin(ctx, adminID); err != nil {
		return err
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return ErrInvalidRole
	}
	if err := repo.UpdateUserRole(ctx, s.DB, id, parsed); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// ListRequests returns a page of all processed requests, most recent first,
// each enriched with the owner's email or UnknownOwnerEmail when the owner
// row is gone.
func (s *AdminService) ListRequests(ctx context.Context, adminID uint, page, pageSize int) ([]AdminRequestEntry, int64, error) {
	tr := otel.Tracer("services/AdminService")
	ctx, span := tr.Start(ctx, "ListRequests",
		trace.WithAttributes(attribute.Int64("admin.id", int64(adminID))),
	)
	defer span.End()

	if err := s.RequireAdmin(ctx, adminID); err != nil {
		return nil, 0, err
	}

	page, pageSize = clampZeroBased(page, pageSize)

	total, err := repo.CountAllRequests(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	rows, err := repo.ListAllRequestsPage(ctx, s.DB, page*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]AdminRequestEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, AdminRequestEntry{
			ID:        r.ID,
			InputText: r.InputText,
			Action:    r.Action,
			Output:    r.Output,
			CreatedAt: r.CreatedAt,
			UserEmail: s.ownerEmail(ctx, r.UserID),
		})
	}
	return entries, total, nil
}

// DeleteRequest removes the request with the given id (idempotent).
func (s *AdminService) DeleteRequest(ctx context.Context, adminID, id uint) error {
	if err := s.RequireAdmin(ctx, adminID); err != nil {
		return err
	}
	return repo.DeleteRequest(ctx, s.DB, id)
}

// GetAnalytics computes the aggregate usage counts.
func (s *AdminService) GetAnalytics(ctx context.Context, adminID uint) (Analytics, error) {
	if err := s.RequireAdmin(ctx, adminID); err != nil {
		return Analytics{}, err
	}

	totalUsers, err := repo.CountUsers(ctx, s.DB)
	if err != nil {
		return Analytics{}, err
	}
	totalRequests, err := repo.CountAllRequests(ctx, s.DB)
	if err != nil {
		return Analytics{}, err
	}
	totalAdmins, err := repo.CountUsersByRole(ctx, s.DB, domain.RoleAdmin)
	if err != nil {
		return Analytics{}, err
	}

	return Analytics{
		TotalUsers:       totalUsers,
		TotalRequests:    totalRequests,
		TotalAdmins:      totalAdmins,
		TotalNormalUsers: totalUsers - totalAdmins,
	}, nil
}

// ownerEmail looks up the owning user's email, degrading to UnknownOwnerEmail
// when the owner no longer exists. Absence is an expected state here, not an
// error.
func (s *AdminService) ownerEmail(ctx context.Context, userID uint) string {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		return UnknownOwnerEmail
	}
	return u.Email
}

// clampZeroBased coerces invalid zero-based pagination parameters to the
// defaults shared with the history endpoint.
func clampZeroBased(page, pageSize int) (int, int) {
	if page < 0 {
		page = DefaultHistoryPage
	}
	if pageSize <= 0 {
		pageSize = DefaultHistorySize
	}
	return page, pageSize
}
