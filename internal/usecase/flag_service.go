package usecase

import (
	"context"
	"errors"
	"time"

	"contesthub/internal/domain"

	"github.com/google/uuid"
)

const flagNotFoundMessage = "Flag Id does not exist"

type FlagService struct {
	Flags    FlagRepository
	Contests ContestRepository
	Comments CommentRepository
	Now      func() time.Time
}

func NewFlagService(flags FlagRepository, contests ContestRepository, comments CommentRepository) *FlagService {
	return &FlagService{Flags: flags, Contests: contests, Comments: comments, Now: time.Now}
}

func (s *FlagService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *FlagService) Create(ctx context.Context, flag domain.Flag, reportedBy string) (domain.Flag, error) {
	if s == nil || s.Flags == nil || s.Contests == nil || s.Comments == nil {
		return domain.Flag{}, errors.New("flag repositories are required")
	}
	if err := s.targetExists(ctx, flag.TargetType, flag.TargetID); err != nil {
		return domain.Flag{}, err
	}
	if flag.Status == "" {
		flag.Status = domain.FlagStatuses[0]
	}
	now := s.now()
	flag.ID = uuid.NewString()
	flag.ReportedBy = reportedBy
	flag.CreatedAt = now
	flag.UpdatedAt = now
	return s.Flags.Create(ctx, flag)
}

func (s *FlagService) targetExists(ctx context.Context, target domain.FlagTarget, targetID string) error {
	var (
		exists  bool
		err     error
		missing string
	)
	switch target {
	case domain.FlagTargetContest:
		exists, err = s.Contests.Exists(ctx, targetID)
		missing = contestNotFoundMessage
	case domain.FlagTargetComment:
		exists, err = s.Comments.Exists(ctx, targetID)
		missing = commentNotFoundMessage
	default:
		return domain.ErrInvalidArgument
	}
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Message: missing}
	}
	return nil
}

func (s *FlagService) Get(ctx context.Context, flagID string) (domain.Flag, error) {
	flag, err := s.Flags.GetByID(ctx, flagID)
	if err != nil {
		return domain.Flag{}, flagErr(err)
	}
	return *flag, nil
}

func (s *FlagService) List(ctx context.Context, filter domain.FlagFilter) ([]domain.Flag, error) {
	return s.Flags.List(ctx, filter)
}

func (s *FlagService) Update(ctx context.Context, flagID string, patch domain.FlagPatch) (domain.Flag, error) {
	existing, err := s.Flags.GetByID(ctx, flagID)
	if err != nil {
		return domain.Flag{}, flagErr(err)
	}
	merged := patch.Apply(*existing)
	merged.UpdatedAt = s.now()
	updated, err := s.Flags.Update(ctx, merged)
	if err != nil {
		return domain.Flag{}, flagErr(err)
	}
	return updated, nil
}

func (s *FlagService) Delete(ctx context.Context, flagID string) error {
	if _, err := s.Flags.GetByID(ctx, flagID); err != nil {
		return flagErr(err)
	}
	return flagErr(s.Flags.Delete(ctx, flagID))
}

func flagErr(err error) error {
	var nf *domain.NotFoundError
	if err != nil && errors.Is(err, domain.ErrNotFound) && !errors.As(err, &nf) {
		return &domain.NotFoundError{Message: flagNotFoundMessage}
	}
	return err
}
