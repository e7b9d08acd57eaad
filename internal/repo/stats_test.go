package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/go-ai-backend/internal/domain"
)

func TestRequestsStats_EmptyUser(t *testing.T) {
	db := newRepoDB(t, &domain.AIRequest{})

	count, maxTS, err := RequestsStats(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("RequestsStats: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("expected (0, nil), got (%d, %v)", count, maxTS)
	}
}

func TestRequestsStats_CountAndLatest(t *testing.T) {
	db := newRepoDB(t, &domain.AIRequest{})
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	rows := []domain.AIRequest{
		{InputText: "a", Action: "EXPLAIN", Output: "o", UserID: 1, CreatedAt: base},
		{InputText: "b", Action: "EXPLAIN", Output: "o", UserID: 1, CreatedAt: base.Add(10 * time.Minute)},
		{InputText: "z", Action: "EXPLAIN", Output: "o", UserID: 2, CreatedAt: base.Add(time.Hour)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	count, maxTS, err := RequestsStats(ctx, db, 1)
	if err != nil {
		t.Fatalf("RequestsStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d", count)
	}
	if maxTS == nil || !maxTS.Equal(base.Add(10*time.Minute)) {
		t.Fatalf("maxCreatedAt = %v", maxTS)
	}
}

func TestRequestsStats_Error_NoTable(t *testing.T) {
	db := newRepoDB(t /* no migrations */)
	if _, _, err := RequestsStats(context.Background(), db, 1); err == nil {
		t.Fatalf("expected error without table")
	}
}
