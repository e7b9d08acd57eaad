package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ai-backend/internal/ai"
	"github.com/tbourn/go-ai-backend/internal/domain"
)

// fakeClient returns a canned Result and records the prompt it was given.
type fakeClient struct {
	result  ai.Result
	prompts []string
}

func (f *fakeClient) Complete(_ context.Context, prompt string) ai.Result {
	f.prompts = append(f.prompts, prompt)
	return f.result
}

// fakeRequestRepo is an in-memory RequestRepo.
type fakeRequestRepo struct {
	rows      []domain.AIRequest
	nextID    uint
	createErr error
	countErr  error
	listErr   error
	deleteErr error
}

func (f *fakeRequestRepo) CreateRequest(_ context.Context, _ *gorm.DB, userID uint, inputText, action, output string) (*domain.AIRequest, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	r := domain.AIRequest{
		ID:        f.nextID,
		InputText: inputText,
		Action:    action,
		Output:    output,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	f.rows = append(f.rows, r)
	return &r, nil
}

func (f *fakeRequestRepo) CountRequests(_ context.Context, _ *gorm.DB, userID uint) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, r := range f.rows {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRequestRepo) ListRequestsPage(_ context.Context, _ *gorm.DB, userID uint, offset, limit int) ([]domain.AIRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var owned []domain.AIRequest
	for i := len(f.rows) - 1; i >= 0; i-- { // newest first
		if f.rows[i].UserID == userID {
			owned = append(owned, f.rows[i])
		}
	}
	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (f *fakeRequestRepo) DeleteRequest(_ context.Context, _ *gorm.DB, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestAIService_Process_PersistsAndReturnsOutput(t *testing.T) {
	repo := &fakeRequestRepo{}
	client := &fakeClient{result: ai.Result{Text: "a short summary"}}
	svc := NewAIService(nil, repo, client)

	rec, res, err := svc.Process(context.Background(), 7, "some long text", "summarize")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Text != "a short summary" || res.Degraded {
		t.Fatalf("unexpected result: %+v", res)
	}
	if rec == nil || rec.ID == 0 {
		t.Fatalf("expected a persisted record, got %+v", rec)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 persisted row, got %d", len(repo.rows))
	}
	row := repo.rows[0]
	if row.UserID != 7 || row.InputText != "some long text" || row.Output != "a short summary" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.Action != "summarize" {
		t.Fatalf("action must be stored as supplied, got %q", row.Action)
	}
	if len(client.prompts) != 1 || !strings.HasPrefix(client.prompts[0], "Summarize this text:\n") {
		t.Fatalf("unexpected prompt: %q", client.prompts)
	}
}

func TestAIService_Process_MissingCaller(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewAIService(nil, repo, &fakeClient{result: ai.Result{Text: "x"}})

	if _, _, err := svc.Process(context.Background(), 0, "text", "SUMMARIZE"); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("no row must be written without a caller, got %d", len(repo.rows))
	}
}

func TestAIService_Process_DegradedStillPersists(t *testing.T) {
	repo := &fakeRequestRepo{}
	client := &fakeClient{result: ai.Result{Text: ai.PlaceholderUnavailable, Degraded: true}}
	svc := NewAIService(nil, repo, client)

	_, res, err := svc.Process(context.Background(), 3, "input", "EXPLAIN")
	if err != nil {
		t.Fatalf("Process must not fail on a degraded completion: %v", err)
	}
	if !res.Degraded || res.Text != ai.PlaceholderUnavailable {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(repo.rows) != 1 || repo.rows[0].Output != ai.PlaceholderUnavailable {
		t.Fatalf("placeholder must be persisted as the output: %+v", repo.rows)
	}
}

func TestAIService_Process_PersistError(t *testing.T) {
	repo := &fakeRequestRepo{createErr: errors.New("disk full")}
	svc := NewAIService(nil, repo, &fakeClient{result: ai.Result{Text: "out"}})

	if _, _, err := svc.Process(context.Background(), 1, "t", "REWRITE"); err == nil {
		t.Fatalf("expected persistence error to surface")
	}
}

func TestAIService_History_PagingAndDefaults(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewAIService(nil, repo, &fakeClient{})

	for i := 0; i < 7; i++ {
		if _, err := repo.CreateRequest(context.Background(), nil, 1, fmt.Sprintf("in-%d", i), "SUMMARIZE", fmt.Sprintf("out-%d", i)); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	// One row for another user that must never leak.
	if _, err := repo.CreateRequest(context.Background(), nil, 2, "other", "EXPLAIN", "other-out"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Defaults: page 0, size 5, newest first.
	entries, total, err := svc.History(context.Background(), 1, -1, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if total != 7 || len(entries) != 5 {
		t.Fatalf("expected total=7 len=5, got total=%d len=%d", total, len(entries))
	}
	if entries[0].Input != "in-6" {
		t.Fatalf("expected newest first, got %q", entries[0].Input)
	}

	// Second page holds the remainder.
	entries, total, err = svc.History(context.Background(), 1, 1, 5)
	if err != nil || total != 7 || len(entries) != 2 {
		t.Fatalf("page 1: total=%d len=%d err=%v", total, len(entries), err)
	}

	// Page past the end is empty, not an error.
	entries, _, err = svc.History(context.Background(), 1, 9, 5)
	if err != nil || len(entries) != 0 {
		t.Fatalf("page past end: len=%d err=%v", len(entries), err)
	}
}

func TestAIService_History_NoRecords(t *testing.T) {
	svc := NewAIService(nil, &fakeRequestRepo{}, &fakeClient{})

	entries, total, err := svc.History(context.Background(), 42, 0, 5)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if total != 0 || entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got total=%d entries=%#v", total, entries)
	}
}

func TestAIService_DeleteHistory_Idempotent(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewAIService(nil, repo, &fakeClient{})

	r, _ := repo.CreateRequest(context.Background(), nil, 1, "in", "SUMMARIZE", "out")
	if err := svc.DeleteHistory(context.Background(), r.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteHistory(context.Background(), r.ID); err != nil {
		t.Fatalf("second delete must be a no-op success: %v", err)
	}
	if err := svc.DeleteHistory(context.Background(), 9999); err != nil {
		t.Fatalf("deleting unknown id must succeed: %v", err)
	}
}
