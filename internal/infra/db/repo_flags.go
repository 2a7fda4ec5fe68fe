package db

import (
	"context"
	"errors"

	"contesthub/internal/domain"

	"gorm.io/gorm"
)

type FlagRepository struct {
	db *gorm.DB
}

func NewFlagRepository(db *gorm.DB) *FlagRepository {
	return &FlagRepository{db: db}
}

func (r *FlagRepository) Create(ctx context.Context, flag domain.Flag) (domain.Flag, error) {
	if r.db == nil {
		return domain.Flag{}, errDBUnavailable
	}
	model := FlagModel{
		FlagID:     flag.ID,
		TargetType: string(flag.TargetType),
		TargetID:   flag.TargetID,
		Reason:     flag.Reason,
		Status:     string(flag.Status),
		ReportedBy: flag.ReportedBy,
		CreatedAt:  flag.CreatedAt,
		UpdatedAt:  flag.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Flag{}, err
	}
	return flagFromModel(model), nil
}

func (r *FlagRepository) GetByID(ctx context.Context, flagID string) (*domain.Flag, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model FlagModel
	err := r.db.WithContext(ctx).Where("flag_id = ?", flagID).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	flag := flagFromModel(model)
	return &flag, nil
}

func (r *FlagRepository) List(ctx context.Context, filter domain.FlagFilter) ([]domain.Flag, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	query := r.db.WithContext(ctx).Model(&FlagModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	var models []FlagModel
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Flag, 0, len(models))
	for _, model := range models {
		out = append(out, flagFromModel(model))
	}
	return out, nil
}

func (r *FlagRepository) Update(ctx context.Context, flag domain.Flag) (domain.Flag, error) {
	if r.db == nil {
		return domain.Flag{}, errDBUnavailable
	}
	res := r.db.WithContext(ctx).Model(&FlagModel{}).
		Where("flag_id = ?", flag.ID).
		Updates(map[string]any{
			"reason":     flag.Reason,
			"status":     string(flag.Status),
			"updated_at": flag.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Flag{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Flag{}, domain.ErrNotFound
	}
	return flag, nil
}

func (r *FlagRepository) Delete(ctx context.Context, flagID string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	res := r.db.WithContext(ctx).Where("flag_id = ?", flagID).Delete(&FlagModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func flagFromModel(m FlagModel) domain.Flag {
	return domain.Flag{
		ID:         m.FlagID,
		TargetType: domain.FlagTarget(m.TargetType),
		TargetID:   m.TargetID,
		Reason:     m.Reason,
		Status:     domain.FlagStatus(m.Status),
		ReportedBy: m.ReportedBy,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}
