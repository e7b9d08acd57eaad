// Administrative HTTP handlers.
//
// This file exposes the gated admin endpoints:
//   - GET    /admin/users              (list users, paginated)
//   - DELETE /admin/users/{id}         (remove a user)
//   - PUT    /admin/users/{id}/role    (change a user's role)
//   - GET    /admin/requests           (list all processed requests)
//   - DELETE /admin/requests/{id}      (remove a request)
//   - GET    /admin/analytics          (usage counters)
//
// Every endpoint takes the caller's id as the admin_id query parameter and
// relies on the service layer's authorization gate: unknown callers map to
// 404, non-admin callers to 403.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ai-backend/internal/domain"
	"github.com/tbourn/go-ai-backend/internal/services"
	"github.com/tbourn/go-ai-backend/internal/utils"
)

//
// DTOs
//

// ChangeRoleRequest is the JSON payload for updating a user's role.
type ChangeRoleRequest struct {
	// Role is the new role; USER or ADMIN (case-insensitive).
	Role string `json:"role" binding:"required" example:"ADMIN"`
}

// ListUsersResponse wraps a page of users and pagination information.
type ListUsersResponse struct {
	Users      []domain.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

// ListRequestsResponse wraps a page of enriched requests and pagination
// information.
type ListRequestsResponse struct {
	Requests   []services.AdminRequestEntry `json:"requests"`
	Pagination Pagination                   `json:"pagination"`
}

//
// Helpers
//

// adminID extracts the caller's id from the admin_id query parameter. On
// failure it writes a 400 response and returns false.
func adminID(c *gin.Context) (uint, bool) {
	id, okID := utils.ParseUint(c.Query("admin_id"))
	if !okID || id == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "admin_id is required")
		return 0, false
	}
	return id, true
}

// failAdmin translates service-layer errors from the admin surface into the
// standard error envelope.
func failAdmin(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAdminNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "admin not found")
	case errors.Is(err, services.ErrAccessDenied):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "access denied")
	case errors.Is(err, services.ErrSelfDelete):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "admins cannot delete their own account")
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
	case errors.Is(err, services.ErrInvalidRole):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "role must be USER or ADMIN")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// ListUsers godoc
// @ID          adminListUsers
// @Summary     List users (admin)
// @Description Returns a page of all registered users ordered by id.
// @Tags        Admin
// @Produce     json
//
// @Param       admin_id  query  int  true  "Caller's user ID (must be an admin)"  example(1)
// @Param       page      query  int  false "Page number (zero-based)"             minimum(0) default(0)
// @Param       size      query  int  false "Items per page"                       minimum(1) maximum(100) default(5)
//
// @Success     200  {object} handlers.ListUsersResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Access denied"
// @Failure     404  {object} handlers.ErrorResponse "Admin not found"
// @Router      /admin/users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	aid, okID := adminID(c)
	if !okID {
		return
	}
	page, pageSize := clampPagination(c)

	users, total, err := h.adminSvc.ListUsers(c.Request.Context(), aid, page, pageSize)
	if err != nil {
		failAdmin(c, err)
		return
	}
	ok(c, http.StatusOK, ListUsersResponse{
		Users:      users,
		Pagination: newPagination(page, pageSize, total),
	})
}

// DeleteUser godoc
// @ID          adminDeleteUser
// @Summary     Delete a user (admin)
// @Description Removes a user account. Admins cannot delete themselves. The user's request history is retained.
// @Tags        Admin
// @Produce     json
//
// @Param       admin_id  query  int  true  "Caller's user ID (must be an admin)"  example(1)
// @Param       id        path   int  true  "Target user ID"                       example(2)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request / self-delete"
// @Failure     403  {object} handlers.ErrorResponse "Access denied"
// @Failure     404  {object} handlers.ErrorResponse "Admin not found"
// @Router      /admin/users/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	aid, okID := adminID(c)
	if !okID {
		return
	}
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}

	if err := h.adminSvc.DeleteUser(c.Request.Context(), aid, id); err != nil {
		failAdmin(c, err)
		return
	}
	noContent(c)
}

// ChangeUserRole godoc
// @ID          adminChangeUserRole
// @Summary     Change a user's role (admin)
// @Description Sets the target user's role to USER or ADMIN.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       admin_id  query  int                          true  "Caller's user ID (must be an admin)"  example(1)
// @Param       id        path   int                          true  "Target user ID"                       example(2)
// @Param       body      body   handlers.ChangeRoleRequest   true  "New role"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request / unknown role"
// @Failure     403  {object} handlers.ErrorResponse "Access denied"
// @Failure     404  {object} handlers.ErrorResponse "Admin or user not found"
// @Router      /admin/users/{id}/role [put]
func (h *Handlers) ChangeUserRole(c *gin.Context) {
	aid, okID := adminID(c)
	if !okID {
		return
	}
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.adminSvc.ChangeRole(c.Request.Context(), aid, id, req.Role); err != nil {
		failAdmin(c, err)
		return
	}
	noContent(c)
}

// ListRequests godoc
// @ID          adminListRequests
// @Summary     List processed requests (admin)
// @Description Returns a page of all processed requests, most recent first, each with the owner's email or "Unknown".
// @Tags        Admin
// @Produce     json
//
// @Param       admin_id  query  int  true  "Caller's user ID (must be an admin)"  example(1)
// @Param       page      query  int  false "Page number (zero-based)"             minimum(0) default(0)
// @Param       size      query  int  false "Items per page"                       minimum(1) maximum(100) default(5)
//
// @Success     200  {object} handlers.ListRequestsResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Access denied"
// @Failure     404  {object} handlers.ErrorResponse "Admin not found"
// @Router      /admin/requests [get]
func (h *Handlers) ListRequests(c *gin.Context) {
	aid, okID := adminID(c)
	if !okID {
		return
	}
	page, pageSize := clampPagination(c)

	entries, total, err := h.adminSvc.ListRequests(c.Request.Context(), aid, page, pageSize)
	if err != nil {
		failAdmin(c, err)
		return
	}
	ok(c, http.StatusOK, ListRequestsResponse{
		Requests:   entries,
		Pagination: newPagination(page, pageSize, total),
	})
}

// DeleteRequest godoc
// @ID          adminDeleteRequest
// @Summary     Delete a processed request (admin)
// @Description Removes a processed request by id. Deleting an unknown id is still a success.
// @Tags        Admin
// @Produce     json
//
// @Param       admin_id  query  int  true  "Caller's user ID (must be an admin)"  example(1)
// @Param       id        path   int  true  "Request ID"                           example(42)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Access denied"
// @Failure     404  {object} handlers.ErrorResponse "Admin not found"
// @Router      /admin/requests/{id} [delete]
func (h *Handlers) DeleteRequest(c *gin.Context) {
	aid, okID := adminID(c)
	if !okID {
		return
	}
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}

	if err := h.adminSvc.DeleteRequest(c.Request.Context(), aid, id); err != nil {
		failAdmin(c, err)
		return
	}
	noContent(c)
}

// GetAnalytics godoc
// @ID          adminGetAnalytics
// @Summary     Usage analytics (admin)
// @Description Returns aggregate counts: total users, total requests, admins, and normal users.
// @Tags        Admin
// @Produce     json
//
// @Param       admin_id  query  int  true  "Caller's user ID (must be an admin)"  example(1)
//
// @Success     200  {object} services.Analytics
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Access denied"
// @Failure     404  {object} handlers.ErrorResponse "Admin not found"
// @Router      /admin/analytics [get]
func (h *Handlers) GetAnalytics(c *gin.Context) {
	aid, okID := adminID(c)
	if !okID {
		return
	}

	a, err := h.adminSvc.GetAnalytics(c.Request.Context(), aid)
	if err != nil {
		failAdmin(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}
