package usecase

import (
	"context"
	"errors"
	"testing"

	"contesthub/internal/domain"
	"contesthub/internal/infra/memstore"
)

func TestFlagService_CreateChecksTarget(t *testing.T) {
	store := memstore.New()
	svc := NewFlagService(store.Flags, store.Contests, store.Comments)
	_, err := svc.Create(context.Background(), domain.Flag{
		TargetType: domain.FlagTargetComment,
		TargetID:   "6f1c1a38-3a5e-4f7e-9a55-5f6b4d0f6d11",
		Reason:     "spam links",
	}, "u-1")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Message != commentNotFoundMessage {
		t.Fatalf("expected comment not found, got %v", err)
	}
}

func TestFlagService_Lifecycle(t *testing.T) {
	store := memstore.New()
	contest := seedContest(t, store)
	svc := NewFlagService(store.Flags, store.Contests, store.Comments)

	flag, err := svc.Create(context.Background(), domain.Flag{
		TargetType: domain.FlagTargetContest,
		TargetID:   contest.ID,
		Reason:     "misleading title",
	}, "u-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if flag.Status != domain.FlagPending || flag.ReportedBy != "u-1" {
		t.Fatalf("unexpected flag: %+v", flag)
	}

	reviewed := domain.FlagReviewed
	updated, err := svc.Update(context.Background(), flag.ID, domain.FlagPatch{Status: &reviewed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.FlagReviewed || updated.Reason != "misleading title" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	pending, err := svc.List(context.Background(), domain.FlagFilter{Status: domain.FlagPending})
	if err != nil || len(pending) != 0 {
		t.Fatalf("expected no pending flags, got %v %v", pending, err)
	}

	if err := svc.Delete(context.Background(), flag.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), flag.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
