package usecase

import (
	"context"

	"contesthub/internal/domain"
)

type ContestRepository interface {
	Create(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	GetByID(ctx context.Context, contestID string) (*domain.Contest, error)
	List(ctx context.Context, filter domain.ContestFilter) ([]domain.Contest, error)
	Update(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	Delete(ctx context.Context, contestID string) error
	Exists(ctx context.Context, contestID string) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	GetByID(ctx context.Context, commentID string) (*domain.Comment, error)
	ListByContest(ctx context.Context, contestID string) ([]domain.Comment, error)
	Update(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	Delete(ctx context.Context, commentID string) error
	Exists(ctx context.Context, commentID string) (bool, error)
}

type FlagRepository interface {
	Create(ctx context.Context, flag domain.Flag) (domain.Flag, error)
	GetByID(ctx context.Context, flagID string) (*domain.Flag, error)
	List(ctx context.Context, filter domain.FlagFilter) ([]domain.Flag, error)
	Update(ctx context.Context, flag domain.Flag) (domain.Flag, error)
	Delete(ctx context.Context, flagID string) error
}
