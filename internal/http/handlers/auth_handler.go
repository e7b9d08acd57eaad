// Account HTTP handlers.
//
// This file exposes the account lifecycle endpoints:
//   - POST   /auth/signup        (register)
//   - POST   /auth/login         (verify credentials)
//   - PUT    /auth/update        (modify profile)
//   - DELETE /auth/delete/{id}   (remove account)
//
// Password hashes never appear in responses; the domain model suppresses the
// field during serialization.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ai-backend/internal/services"
	"github.com/tbourn/go-ai-backend/internal/utils"
)

//
// DTOs
//

// SignupRequest is the JSON payload for registering an account.
type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Ada Lovelace"`
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"s3cret!"`
}

// LoginRequest is the JSON payload for verifying credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// UpdateAccountRequest is the JSON payload for modifying an account. Empty
// fields are left unchanged.
type UpdateAccountRequest struct {
	UserID   uint   `json:"user_id" binding:"required" example:"7"`
	Name     string `json:"name" example:"Ada L."`
	Email    string `json:"email" example:"ada.l@example.com"`
	Password string `json:"password" example:"n3w-s3cret"`
}

//
// Handlers
//

// Signup godoc
// @ID          signup
// @Summary     Register an account
// @Description Creates a new account with the USER role. The password is stored hashed.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SignupRequest  true  "Signup payload"
//
// @Success     201  {object} domain.User
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     409  {object} handlers.ErrorResponse "Email already registered"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/signup [post]
func (h *Handlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, valid email, and password (min 6 chars) required")
		return
	}

	u, err := h.authSvc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			fail(c, http.StatusConflict, ErrCodeConflict, "email already registered")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusCreated, u)
}

// Login godoc
// @ID          login
// @Summary     Verify credentials
// @Description Checks the email/password pair and returns the matching account.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object} domain.User
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Invalid credentials"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "valid email and password required")
		return
	}

	u, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid email or password")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, u)
}

// UpdateAccount godoc
// @ID          updateAccount
// @Summary     Update an account
// @Description Modifies name, email, or password. Empty fields are left unchanged; a new password is re-hashed.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.UpdateAccountRequest  true  "Update payload"
//
// @Success     200  {object} domain.User
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     409  {object} handlers.ErrorResponse "Email already registered"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/update [put]
func (h *Handlers) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user_id required")
		return
	}

	u, err := h.authSvc.Update(c.Request.Context(), req.UserID, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		case errors.Is(err, services.ErrEmailTaken):
			fail(c, http.StatusConflict, ErrCodeConflict, "email already registered")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}

// DeleteAccount godoc
// @ID          deleteAccount
// @Summary     Delete an account
// @Description Removes an account by id. The account's request history is retained.
// @Tags        Auth
// @Produce     json
//
// @Param       id  path  int  true  "User ID"  example(7)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/delete/{id} [delete]
func (h *Handlers) DeleteAccount(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}

	if err := h.authSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}
