package usecase

import (
	"context"
	"errors"
	"time"

	"contesthub/internal/domain"
	"contesthub/internal/validation"

	"github.com/google/uuid"
)

const contestNotFoundMessage = "Contest Id does not exist Or May Contest is already Deleted"

type ContestService struct {
	Contests ContestRepository
	Now      func() time.Time
}

func NewContestService(contests ContestRepository) *ContestService {
	return &ContestService{Contests: contests, Now: time.Now}
}

func (s *ContestService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Create expects fields that already passed validation on create.
func (s *ContestService) Create(ctx context.Context, fields domain.ContestPatch, createdBy string) (domain.Contest, error) {
	if s == nil || s.Contests == nil {
		return domain.Contest{}, errors.New("contest repository is required")
	}
	now := s.now()
	contest := fields.Apply(domain.Contest{
		ID:        uuid.NewString(),
		Status:    domain.ContestStatuses[0],
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return s.Contests.Create(ctx, contest)
}

func (s *ContestService) Get(ctx context.Context, contestID string) (domain.Contest, error) {
	contest, err := s.Contests.GetByID(ctx, contestID)
	if err != nil {
		return domain.Contest{}, contestErr(err)
	}
	return *contest, nil
}

func (s *ContestService) List(ctx context.Context, filter domain.ContestFilter) ([]domain.Contest, error) {
	return s.Contests.List(ctx, filter)
}

// Update re-checks date ordering against the stored contest, since a partial update may
// carry only one of the two dates.
func (s *ContestService) Update(ctx context.Context, contestID string, patch domain.ContestPatch) (domain.Contest, error) {
	existing, err := s.Contests.GetByID(ctx, contestID)
	if err != nil {
		return domain.Contest{}, contestErr(err)
	}
	merged := patch.Apply(*existing)
	if !merged.EndDate.After(merged.StartDate) {
		return domain.Contest{}, &domain.ValidationError{Messages: []string{validation.MsgContestEndBeforeStart}}
	}
	merged.UpdatedAt = s.now()
	updated, err := s.Contests.Update(ctx, merged)
	if err != nil {
		return domain.Contest{}, contestErr(err)
	}
	return updated, nil
}

func (s *ContestService) Delete(ctx context.Context, contestID string) error {
	exists, err := s.Contests.Exists(ctx, contestID)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Message: contestNotFoundMessage}
	}
	return contestErr(s.Contests.Delete(ctx, contestID))
}

func contestErr(err error) error {
	var nf *domain.NotFoundError
	if err != nil && errors.Is(err, domain.ErrNotFound) && !errors.As(err, &nf) {
		return &domain.NotFoundError{Message: contestNotFoundMessage}
	}
	return err
}
