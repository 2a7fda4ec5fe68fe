package db

import (
	"context"
	"errors"

	"contesthub/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByID loads the users row keyed by the identity provider's user id. An unknown
// user_type yields a user with an empty role, which no role-gated route accepts.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	role, _ := domain.ParseRole(model.UserType)
	return &domain.User{
		UserID:    model.UserID,
		Role:      role,
		Username:  model.Username,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
	}, nil
}
