package db

import (
	"context"
	"errors"
	"testing"

	"contesthub/internal/config"
	"contesthub/internal/domain"
)

func TestNewStoreWithoutDSNIsNoDBMode(t *testing.T) {
	store, err := NewStore(config.Config{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.DB != nil {
		t.Fatalf("expected nil DB in no-db mode")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestRepositoriesWithoutDBReportUnavailable(t *testing.T) {
	ctx := context.Background()
	if _, err := NewUserRepository(nil).FindUserByID(ctx, "u"); !errors.Is(err, errDBUnavailable) {
		t.Fatalf("users: expected errDBUnavailable, got %v", err)
	}
	if _, err := NewContestRepository(nil).List(ctx, domain.ContestFilter{}); !errors.Is(err, errDBUnavailable) {
		t.Fatalf("contests: expected errDBUnavailable, got %v", err)
	}
	if err := NewCommentRepository(nil).Delete(ctx, "c"); !errors.Is(err, errDBUnavailable) {
		t.Fatalf("comments: expected errDBUnavailable, got %v", err)
	}
	if _, err := NewFlagRepository(nil).GetByID(ctx, "f"); !errors.Is(err, errDBUnavailable) {
		t.Fatalf("flags: expected errDBUnavailable, got %v", err)
	}
}

func TestGormLogLevel(t *testing.T) {
	if gormLogLevel("debug") == gormLogLevel("info") {
		t.Fatalf("debug should be more verbose than info")
	}
}
