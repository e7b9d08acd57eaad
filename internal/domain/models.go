// Package domain defines the persistence models for users and AI requests.
// These types are mapped with GORM and form the core data layer of the
// AI text-processing application.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of authorization levels a user can hold. The value
// is stored as text but only the two canonical constants below are accepted
// at the store boundary (see ParseRole).
type Role string

const (
	// RoleUser is the default role assigned at signup.
	RoleUser Role = "USER"
	// RoleAdmin grants access to the administrative API surface.
	RoleAdmin Role = "ADMIN"
)

// ParseRole translates a caller-supplied role string into a Role. Matching is
// case-insensitive and surrounding whitespace is ignored; anything outside
// {USER, ADMIN} is rejected so free-text roles never reach the database.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unrecognized role %q", s)
	}
}

// IsAdmin reports whether the role grants administrative privileges.
// Comparison is case-insensitive to tolerate rows written before roles
// were normalized.
func (r Role) IsAdmin() bool {
	return strings.EqualFold(string(r), string(RoleAdmin))
}

// User represents a registered account. Credentials are managed by the auth
// service (bcrypt hashes only); the password column is never serialized.
//
// Fields:
//   - ID: autoincrement primary key.
//   - Name / Email: profile data; email is unique across accounts.
//   - Password: bcrypt hash, excluded from JSON.
//   - Role: closed enum, defaults to USER.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Password  string    `json:"-"          gorm:"type:varchar(255);not null"`
	Role      Role      `json:"role"       gorm:"type:varchar(16);not null;default:'USER'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// AIRequest is one processed submission: the text a user sent, the action
// requested, and the output the completion endpoint produced (or the degraded
// placeholder when the call failed). Rows are immutable after creation and
// are removed only by explicit delete.
//
// Deleting a user does not touch their rows; admin listings fall back to an
// "Unknown" owner email for orphaned records.
//
// Fields:
//   - ID: autoincrement primary key; creation order is monotonic with ID.
//   - InputText: the raw submitted text.
//   - Action: the action exactly as the caller supplied it (normalization
//     happens only inside the prompt builder).
//   - Output: the completion text or placeholder.
//   - UserID: owner; indexed for per-user history queries.
//   - CreatedAt: server-assigned at creation, immutable, indexed for the
//     recency ordering used by history and admin listings.
type AIRequest struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	InputText string    `json:"input_text" gorm:"type:text;not null"`
	Action    string    `json:"action"     gorm:"type:varchar(32);not null"`
	Output    string    `json:"output"     gorm:"type:text;not null"`
	UserID    uint      `json:"user_id"    gorm:"not null;index:idx_user_requests"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_requests_created"`
}

// TableName returns the database table name for AIRequest.
func (AIRequest) TableName() string { return "ai_requests" }
