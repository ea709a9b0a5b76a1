package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestSubmissionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	first, err := repo.Submit(ctx, Submission{
		Topic:  "Параметр",
		Kind:   "short",
		Record: json.RawMessage(`{"id":900,"answer_format":"decimal","answer":"2"}`),
		Author: "teacher@example.com",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if first.Status != StatusPending || first.Source != "manual" {
		t.Errorf("submission = %+v", first)
	}
	second, _ := repo.Submit(ctx, Submission{
		Kind:   "single",
		Record: json.RawMessage(`{"id":901}`),
		Source: "mock-model",
	})

	if _, err := repo.Submit(ctx, Submission{}); err == nil {
		t.Error("expected error for submission without record")
	}

	pending, _ := repo.List(ctx, StatusPending)
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	approved, err := repo.Review(ctx, first.ID, true, "ok", now)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if approved.Status != StatusApproved || approved.ReviewedAt == nil {
		t.Errorf("approved = %+v", approved)
	}
	if _, err := repo.Review(ctx, second.ID, false, "duplicate", now); err != nil {
		t.Fatalf("Review reject: %v", err)
	}

	records, err := repo.Approved(ctx)
	if err != nil {
		t.Fatalf("Approved: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("approved records = %d, want 1", len(records))
	}
	var rec map[string]any
	_ = json.Unmarshal(records[0], &rec)
	if rec["id"] != float64(900) {
		t.Errorf("approved record = %s", records[0])
	}

	all, _ := repo.List(ctx, "")
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}

	if _, err := repo.Get(ctx, 12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing err = %v, want ErrNotFound", err)
	}
	if _, err := repo.Review(ctx, 12345, true, "", now); !errors.Is(err, ErrNotFound) {
		t.Errorf("Review missing err = %v, want ErrNotFound", err)
	}
}
