// AI processing HTTP handlers.
//
// This file exposes REST endpoints for text processing and per-user history:
//   - POST   /ai/process        (submit text for SUMMARIZE/REWRITE/EXPLAIN)
//   - GET    /ai/history        (list, paginated, ETag support)
//   - DELETE /ai/history/{id}   (remove a record)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses
// and Idempotency-Key replays).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/ai"
	"github.com/tbourn/go-ai-backend/internal/domain"
	"github.com/tbourn/go-ai-backend/internal/repo"
	"github.com/tbourn/go-ai-backend/internal/services"
	"github.com/tbourn/go-ai-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// ProcessService defines the text-processing operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProcessService interface {
	// Process runs one submission through the completion pipeline and
	// persists the resulting record.
	Process(ctx context.Context, userID uint, text, action string) (*domain.AIRequest, ai.Result, error)
	// History returns a page of the user's records and the total count.
	History(ctx context.Context, userID uint, page, pageSize int) ([]services.HistoryEntry, int64, error)
	// DeleteHistory removes a record by id (idempotent).
	DeleteHistory(ctx context.Context, id uint) error
}

// AdminService defines the gated administrative operations consumed by HTTP
// handlers. Every method validates the caller before acting.
type AdminService interface {
	ListUsers(ctx context.Context, adminID uint, page, pageSize int) ([]domain.User, int64, error)
	DeleteUser(ctx context.Context, adminID, id uint) error
	ChangeRole(ctx context.Context, adminID, id uint, role string) error
	ListRequests(ctx context.Context, adminID uint, page, pageSize int) ([]services.AdminRequestEntry, int64, error)
	DeleteRequest(ctx context.Context, adminID, id uint) error
	GetAnalytics(ctx context.Context, adminID uint) (services.Analytics, error)
}

// AccountService defines account lifecycle operations consumed by HTTP
// handlers.
type AccountService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Update(ctx context.Context, id uint, name, email, password string) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}

//
// Handler wiring
//

// defaultIdempotencyTTL bounds how long a stored Idempotency-Key replay
// stays valid when no TTL is configured.
const defaultIdempotencyTTL = 24 * time.Hour

// Handlers groups HTTP endpoints for processing, administration, and
// accounts. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	procSvc  ProcessService
	adminSvc AdminService
	authSvc  AccountService

	// IdempotencyTTL controls replay retention for Idempotency-Key requests.
	// Zero means defaultIdempotencyTTL.
	IdempotencyTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
func New(procSvc ProcessService, adminSvc AdminService, authSvc AccountService) *Handlers {
	return &Handlers{procSvc: procSvc, adminSvc: adminSvc, authSvc: authSvc}
}

// db returns the underlying database handle when the processing service is
// the concrete implementation, enabling best-effort extras (ETag pre-checks,
// idempotency replays) without widening the service contract.
func (h *Handlers) db() *gorm.DB {
	if svc, ok := h.procSvc.(*services.AIService); ok {
		return svc.DB
	}
	return nil
}

func (h *Handlers) idempotencyTTL() time.Duration {
	if h.IdempotencyTTL > 0 {
		return h.IdempotencyTTL
	}
	return defaultIdempotencyTTL
}

//
// DTOs
//

// ProcessRequest is the JSON payload for submitting text.
type ProcessRequest struct {
	// Text is the content to transform.
	Text string `json:"text" binding:"required" example:"Quarterly revenue grew 12% on strong subscriptions."`
	// Action selects the transformation (SUMMARIZE, REWRITE, EXPLAIN).
	Action string `json:"action" binding:"required" example:"SUMMARIZE"`
	// UserID identifies the caller; requests without it are rejected.
	UserID *uint `json:"user_id" example:"7"`
}

// ProcessResponse carries the transformation output.
type ProcessResponse struct {
	Output string `json:"output" example:"Revenue grew 12% this quarter."`
}

// Pagination carries pagination metadata for list responses. Pages are
// zero-based.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// HistoryResponse wraps a page of history entries and pagination information.
type HistoryResponse struct {
	Requests   []services.HistoryEntry `json:"requests"`
	Pagination Pagination              `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and size query params to sane
// defaults and limits, returning (page, pageSize). Pages are zero-based.
func clampPagination(c *gin.Context) (page, pageSize int) {
	const maxPageSize = 100
	page = utils.AtoiDefault(c.Query("page"), services.DefaultHistoryPage)
	if page < 0 {
		page = services.DefaultHistoryPage
	}
	pageSize = utils.AtoiDefault(c.Query("size"), services.DefaultHistorySize)
	if pageSize < 1 {
		pageSize = services.DefaultHistorySize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

func newPagination(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page+1 < totalPages,
	}
}

//
// Handlers
//

// ProcessText godoc
// @ID          processText
// @Summary     Process text with AI
// @Description Runs the submitted text through the selected transformation and persists the result. Supports Idempotency-Key replays.
// @Tags        AI
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Replay-safe request key"  example(2f0c9c1e-aa11-4f0b-9c5d-8e2f8b1d7a90)
// @Param       body             body    handlers.ProcessRequest  true  "Process payload"
//
// @Success     200  {object}  handlers.ProcessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ai/process [post]
func (h *Handlers) ProcessText(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == nil || *req.UserID == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user must be logged in to use AI")
		return
	}
	uid := *req.UserID
	ctx := c.Request.Context()

	// Replay a previously stored response for the same (user, key) pair.
	key := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	db := h.db()
	if key != "" && db != nil {
		if rec, err := repo.GetIdempotency(ctx, db, uid, key, time.Now().UTC()); err == nil {
			if row, err := repo.GetRequest(ctx, db, rec.RequestID); err == nil {
				ok(c, rec.Status, ProcessResponse{Output: row.Output})
				return
			}
		}
	}

	rec, res, err := h.procSvc.Process(ctx, uid, req.Text, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrAuthRequired) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeProcessFailed, err.Error())
		return
	}

	if key != "" && db != nil && rec != nil {
		// Best effort; a racing duplicate just means the first writer wins.
		_, _ = repo.CreateIdempotency(ctx, db, uid, key, rec.ID, http.StatusOK, h.idempotencyTTL())
	}

	ok(c, http.StatusOK, ProcessResponse{Output: res.Text})
}

// ListHistory godoc
// @ID          listHistory
// @Summary     List processing history (paginated)
// @Description Returns a page of the user's processed requests, most recent first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        AI
// @Produce     json
//
// @Param       user_id        query   int     true  "Owner user ID"                example(7)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"   example(W/\"abc123\")
// @Param       page           query   int     false "Page number (zero-based)"     minimum(0) default(0)
// @Param       size           query   int     false "Items per page"               minimum(1) maximum(100) default(5)
//
// @Success     200  {object} handlers.HistoryResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /ai/history [get]
func (h *Handlers) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()
	uid, okID := utils.ParseUint(c.Query("user_id"))
	if !okID || uid == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user_id is required")
		return
	}
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if db := h.db(); db != nil {
		count, maxTS, err := repo.RequestsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"history:%d:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	entries, total, err := h.procSvc.History(ctx, uid, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, HistoryResponse{
		Requests:   entries,
		Pagination: newPagination(page, pageSize, total),
	})
}

// DeleteHistory godoc
// @ID          deleteHistory
// @Summary     Delete a history record
// @Description Removes a processed request by id. Deleting an unknown id is still a success.
// @Tags        AI
// @Produce     json
//
// @Param       id  path  int  true  "Request ID"  example(42)
//
// @Success     200  {object} map[string]bool
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /ai/history/{id} [delete]
func (h *Handlers) DeleteHistory(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}

	if err := h.procSvc.DeleteHistory(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, gin.H{"success": true})
}
