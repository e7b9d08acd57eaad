// Package services – AIService
//
// This file implements AIService, the application-level component that owns
// the processing pipeline: build the prompt, obtain a completion, persist the
// request/response pair, and serve paginated history. A failed completion is
// absorbed upstream (the client returns a degraded Result rather than an
// error), so from this service's point of view every call that carries a
// caller identity produces a persisted record and an output.
//
// Observability: public methods are OpenTelemetry-instrumented; spans include
// the caller identifier and pagination parameters where applicable.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/ai"
	"github.com/tbourn/go-ai-backend/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Default pagination applied when the caller sends no (or invalid)
// parameters. Pages are zero-based.
const (
	DefaultHistoryPage = 0
	DefaultHistorySize = 5
)

// CompletionClient is the contract AIService requires from the remote
// completion layer. Implementations never return an error; failures are
// folded into a degraded Result.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) ai.Result
}

// RequestRepo defines the repository contract required by AIService.
// Implementations are responsible for persistence of AIRequest rows.
type RequestRepo interface {
	// CreateRequest inserts a new request row for the given owner.
	CreateRequest(ctx context.Context, db *gorm.DB, userID uint, inputText, action, output string) (*domain.AIRequest, error)

	// CountRequests returns the total number of rows owned by userID.
	CountRequests(ctx context.Context, db *gorm.DB, userID uint) (int64, error)

	// ListRequestsPage returns a page of rows owned by userID, most recent first.
	ListRequestsPage(ctx context.Context, db *gorm.DB, userID uint, offset, limit int) ([]domain.AIRequest, error)

	// DeleteRequest removes a row by id (idempotent).
	DeleteRequest(ctx context.Context, db *gorm.DB, id uint) error
}

// HistoryEntry is the per-user view of a processed request. The owner id is
// deliberately absent: callers only ever see their own history.
type HistoryEntry struct {
	ID        uint      `json:"id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
	Action    string    `json:"action"`
}

// AIService orchestrates prompt construction, completion, and persistence.
type AIService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the request repository used by this service.
	Repo RequestRepo
	// Client performs the remote completion call.
	Client CompletionClient
}

// NewAIService constructs an AIService bound to the given handle, repository,
// and completion client.
func NewAIService(db *gorm.DB, r RequestRepo, c CompletionClient) *AIService {
	return &AIService{DB: db, Repo: r, Client: c}
}

// Process runs the pipeline for one submission and returns the persisted
// record alongside the completion result. userID must be present (non-zero);
// otherwise ErrAuthRequired is returned and nothing is written. The action is
// stored exactly as supplied; normalization happens only inside the prompt
// builder. A degraded completion still persists and still succeeds — the
// caller can inspect Result.Degraded but the pipeline never fails because of
// the remote dependency.
func (s *AIService) Process(ctx context.Context, userID uint, text, action string) (*domain.AIRequest, ai.Result, error) {
	tr := otel.Tracer("services/AIService")
	ctx, span := tr.Start(ctx, "Process",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(userID)),
			attribute.String("action", action),
		),
	)
	defer span.End()

	if userID == 0 {
		return nil, ai.Result{}, ErrAuthRequired
	}

	prompt := ai.BuildPrompt(text, action)
	res := s.Client.Complete(ctx, prompt)

	rec, err := s.Repo.CreateRequest(ctx, s.DB, userID, text, action, res.Text)
	if err != nil {
		return nil, ai.Result{}, err
	}
	return rec, res, nil
}

// History returns the page of records owned by userID, most recent first
// (created_at descending, id descending on ties). page is zero-based; a page
// past the end yields an empty slice. Invalid parameters are coerced to the
// defaults (page 0, size 5).
func (s *AIService) History(ctx context.Context, userID uint, page, pageSize int) ([]HistoryEntry, int64, error) {
	tr := otel.Tracer("services/AIService")
	ctx, span := tr.Start(ctx, "History",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(userID)),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 0 {
		page = DefaultHistoryPage
	}
	if pageSize <= 0 {
		pageSize = DefaultHistorySize
	}
	offset := page * pageSize

	total, err := s.Repo.CountRequests(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []HistoryEntry{}, 0, nil
	}

	rows, err := s.Repo.ListRequestsPage(ctx, s.DB, userID, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, HistoryEntry{
			ID:        r.ID,
			Input:     r.InputText,
			Output:    r.Output,
			CreatedAt: r.CreatedAt,
			Action:    r.Action,
		})
	}
	return entries, total, nil
}

// DeleteHistory removes the record with the given id. Idempotent: deleting
// an id that does not exist (or was already deleted) is a success.
func (s *AIService) DeleteHistory(ctx context.Context, id uint) error {
	tr := otel.Tracer("services/AIService")
	ctx, span := tr.Start(ctx, "DeleteHistory",
		trace.WithAttributes(attribute.Int64("request.id", int64(id))),
	)
	defer span.End()

	return s.Repo.DeleteRequest(ctx, s.DB, id)
}
