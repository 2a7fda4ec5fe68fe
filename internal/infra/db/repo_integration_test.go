//go:build integration
// +build integration

package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"contesthub/internal/domain"
	"contesthub/internal/infra/db/testdb"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn, cleanup := testdb.NewDatabase(t)
	t.Cleanup(cleanup)
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func TestUserRepositoryFindUserByID(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	id := uuid.NewString()
	if err := gdb.Create(&UserModel{UserID: id, UserType: "moderator", Username: "mod", CreatedAt: time.Now()}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	repo := NewUserRepository(gdb)
	user, err := repo.FindUserByID(ctx, id)
	if err != nil {
		t.Fatalf("FindUserByID: %v", err)
	}
	if user.Role != domain.RoleModerator || user.Username != "mod" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if _, err := repo.FindUserByID(ctx, uuid.NewString()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContestRepositoryLifecycle(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	repo := NewContestRepository(gdb)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	contest := domain.Contest{
		ID:        uuid.NewString(),
		Title:     "Spring Cup",
		StartDate: now.Add(24 * time.Hour),
		EndDate:   now.Add(48 * time.Hour),
		Status:    domain.ContestUpcoming,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := repo.Create(ctx, contest); err != nil {
		t.Fatalf("Create: %v", err)
	}

	contest.Status = domain.ContestOngoing
	if _, err := repo.Update(ctx, contest); err != nil {
		t.Fatalf("Update: %v", err)
	}
	listed, err := repo.List(ctx, domain.ContestFilter{Status: domain.ContestOngoing})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != contest.ID {
		t.Fatalf("unexpected list: %+v", listed)
	}

	if err := repo.Delete(ctx, contest.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, contest.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected soft-deleted contest to be hidden, got %v", err)
	}
	if err := repo.Delete(ctx, contest.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected second delete to report ErrNotFound, got %v", err)
	}
	exists, err := repo.Exists(ctx, contest.ID)
	if err != nil || exists {
		t.Fatalf("Exists after delete = %v, %v", exists, err)
	}
}

func TestCommentAndFlagRepositories(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	contests := NewContestRepository(gdb)
	contest, err := contests.Create(ctx, domain.Contest{
		ID:        uuid.NewString(),
		Title:     "Autumn Cup",
		StartDate: now,
		EndDate:   now.Add(time.Hour),
		Status:    domain.ContestUpcoming,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("create contest: %v", err)
	}

	comments := NewCommentRepository(gdb)
	comment, err := comments.Create(ctx, domain.Comment{
		ID:        uuid.NewString(),
		ContestID: contest.ID,
		UserID:    uuid.NewString(),
		Content:   "good luck",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	comment.Content = "good luck everyone"
	if _, err := comments.Update(ctx, comment); err != nil {
		t.Fatalf("update comment: %v", err)
	}
	listed, err := comments.ListByContest(ctx, contest.ID)
	if err != nil || len(listed) != 1 || listed[0].Content != "good luck everyone" {
		t.Fatalf("ListByContest = %+v, %v", listed, err)
	}

	flags := NewFlagRepository(gdb)
	flag, err := flags.Create(ctx, domain.Flag{
		ID:         uuid.NewString(),
		TargetType: domain.FlagTargetComment,
		TargetID:   comment.ID,
		Reason:     "spam link",
		Status:     domain.FlagPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("create flag: %v", err)
	}
	flag.Status = domain.FlagReviewed
	if _, err := flags.Update(ctx, flag); err != nil {
		t.Fatalf("update flag: %v", err)
	}
	got, err := flags.GetByID(ctx, flag.ID)
	if err != nil || got.Status != domain.FlagReviewed {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}
	if err := flags.Delete(ctx, flag.ID); err != nil {
		t.Fatalf("delete flag: %v", err)
	}
	if err := comments.Delete(ctx, comment.ID); err != nil {
		t.Fatalf("delete comment: %v", err)
	}
}
