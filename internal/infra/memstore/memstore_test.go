package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"contesthub/internal/domain"
)

func TestContestDeleteKeepsTombstone(t *testing.T) {
	ctx := context.Background()
	store := New()
	now := time.Now().UTC()
	contest := domain.Contest{
		ID:        "C-1",
		Title:     "Spring Cup",
		StartDate: now,
		EndDate:   now.Add(time.Hour),
		Status:    domain.ContestUpcoming,
	}
	if _, err := store.Contests.Create(ctx, contest); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Contests.Delete(ctx, "c-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Contests.GetByID(ctx, "C-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if ok, err := store.Contests.Exists(ctx, "C-1"); err != nil || ok {
		t.Fatalf("expected deleted contest to be hidden, ok=%v err=%v", ok, err)
	}
	list, err := store.Contests.List(ctx, domain.ContestFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
	if _, err := store.Contests.Update(ctx, contest); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected update of deleted contest to fail, got %v", err)
	}
	if err := store.Contests.Delete(ctx, "C-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected second delete to fail, got %v", err)
	}

	ts, ok := store.Contests.deleted["c-1"]
	if !ok {
		t.Fatalf("expected tombstone to be retained")
	}
	if ts.contest.Title != "Spring Cup" || ts.deletedAt.IsZero() {
		t.Fatalf("unexpected tombstone %+v", ts)
	}
}
