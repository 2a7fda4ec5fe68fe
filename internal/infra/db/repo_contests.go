package db

import (
	"context"
	"errors"

	"contesthub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContestRepository struct {
	db *gorm.DB
}

func NewContestRepository(db *gorm.DB) *ContestRepository {
	return &ContestRepository{db: db}
}

func (r *ContestRepository) Create(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	if r.db == nil {
		return domain.Contest{}, errDBUnavailable
	}
	model := contestModel(contest)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Contest{}, err
	}
	return contestFromModel(model), nil
}

func (r *ContestRepository) GetByID(ctx context.Context, contestID string) (*domain.Contest, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ContestModel
	err := r.db.WithContext(ctx).Where("contest_id = ?", contestID).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	contest := contestFromModel(model)
	return &contest, nil
}

func (r *ContestRepository) List(ctx context.Context, filter domain.ContestFilter) ([]domain.Contest, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	query := r.db.WithContext(ctx).Model(&ContestModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	var models []ContestModel
	err := query.Order(clause.OrderByColumn{Column: clause.Column{Name: "start_date"}}).Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Contest, 0, len(models))
	for _, model := range models {
		out = append(out, contestFromModel(model))
	}
	return out, nil
}

func (r *ContestRepository) Update(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	if r.db == nil {
		return domain.Contest{}, errDBUnavailable
	}
	res := r.db.WithContext(ctx).Model(&ContestModel{}).
		Where("contest_id = ?", contest.ID).
		Updates(map[string]any{
			"contest_title": contest.Title,
			"description":   contest.Description,
			"start_date":    contest.StartDate,
			"end_date":      contest.EndDate,
			"status":        string(contest.Status),
			"updated_at":    contest.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Contest{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Contest{}, domain.ErrNotFound
	}
	return contest, nil
}

// Delete soft-deletes the contest; deleted rows are invisible to every other query.
func (r *ContestRepository) Delete(ctx context.Context, contestID string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	res := r.db.WithContext(ctx).Where("contest_id = ?", contestID).Delete(&ContestModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContestRepository) Exists(ctx context.Context, contestID string) (bool, error) {
	if r.db == nil {
		return false, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&ContestModel{}).Where("contest_id = ?", contestID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func contestModel(c domain.Contest) ContestModel {
	return ContestModel{
		ContestID:    c.ID,
		ContestTitle: c.Title,
		Description:  c.Description,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Status:       string(c.Status),
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func contestFromModel(m ContestModel) domain.Contest {
	return domain.Contest{
		ID:          m.ContestID,
		Title:       m.ContestTitle,
		Description: m.Description,
		StartDate:   m.StartDate.UTC(),
		EndDate:     m.EndDate.UTC(),
		Status:      domain.ContestStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}
