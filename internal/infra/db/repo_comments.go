package db

import (
	"context"
	"errors"

	"contesthub/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	if r.db == nil {
		return domain.Comment{}, errDBUnavailable
	}
	model := CommentModel{
		CommentID: comment.ID,
		ContestID: comment.ContestID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Comment{}, err
	}
	return commentFromModel(model), nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model CommentModel
	err := r.db.WithContext(ctx).Where("comment_id = ?", commentID).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	comment := commentFromModel(model)
	return &comment, nil
}

func (r *CommentRepository) ListByContest(ctx context.Context, contestID string) ([]domain.Comment, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(models))
	for _, model := range models {
		out = append(out, commentFromModel(model))
	}
	return out, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	if r.db == nil {
		return domain.Comment{}, errDBUnavailable
	}
	res := r.db.WithContext(ctx).Model(&CommentModel{}).
		Where("comment_id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"updated_at": comment.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Comment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Comment{}, domain.ErrNotFound
	}
	return comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	res := r.db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&CommentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Exists(ctx context.Context, commentID string) (bool, error) {
	if r.db == nil {
		return false, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&CommentModel{}).Where("comment_id = ?", commentID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func commentFromModel(m CommentModel) domain.Comment {
	return domain.Comment{
		ID:        m.CommentID,
		ContestID: m.ContestID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
