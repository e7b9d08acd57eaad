// Package services defines the business logic for AI request processing,
// account management, and the administrative surface. This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Processing errors.
var (
	// ErrAuthRequired is returned when a processing request arrives without
	// a caller identity. No record is written in that case.
	ErrAuthRequired = errors.New("user must be logged in to use AI")
)

// Authorization gate errors.
var (
	// ErrAdminNotFound indicates that the id presented as an administrator
	// does not belong to any user.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrAccessDenied indicates that the presented user exists but does not
	// hold the ADMIN role.
	ErrAccessDenied = errors.New("access denied")
)

// Administrative errors.
var (
	// ErrUserNotFound indicates that a referenced user does not exist where
	// existence is required.
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfDelete is returned when an administrator attempts to delete
	// their own account through the admin surface.
	ErrSelfDelete = errors.New("admins cannot delete their own account")

	// ErrInvalidRole is returned when a role change names a value outside
	// the recognized set (USER, ADMIN).
	ErrInvalidRole = errors.New("unrecognized role")
)

// Account errors.
var (
	// ErrEmailTaken is returned on signup when the email already belongs to
	// a registered account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
