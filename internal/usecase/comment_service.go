package usecase

import (
	"context"
	"errors"
	"time"

	"contesthub/internal/domain"

	"github.com/google/uuid"
)

const commentNotFoundMessage = "Comment Id does not exist"

type CommentService struct {
	Comments CommentRepository
	Contests ContestRepository
	Now      func() time.Time
}

func NewCommentService(comments CommentRepository, contests ContestRepository) *CommentService {
	return &CommentService{Comments: comments, Contests: contests, Now: time.Now}
}

func (s *CommentService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *CommentService) Create(ctx context.Context, comment domain.Comment, userID string) (domain.Comment, error) {
	if s == nil || s.Comments == nil || s.Contests == nil {
		return domain.Comment{}, errors.New("comment repositories are required")
	}
	exists, err := s.Contests.Exists(ctx, comment.ContestID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !exists {
		return domain.Comment{}, &domain.NotFoundError{Message: contestNotFoundMessage}
	}
	now := s.now()
	comment.ID = uuid.NewString()
	comment.UserID = userID
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return s.Comments.Create(ctx, comment)
}

func (s *CommentService) Get(ctx context.Context, commentID string) (domain.Comment, error) {
	comment, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, commentErr(err)
	}
	return *comment, nil
}

func (s *CommentService) ListByContest(ctx context.Context, contestID string) ([]domain.Comment, error) {
	exists, err := s.Contests.Exists(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Message: contestNotFoundMessage}
	}
	return s.Comments.ListByContest(ctx, contestID)
}

// Update lets authors edit their own comments; moderators and admins may edit any.
func (s *CommentService) Update(ctx context.Context, commentID, content string, actor domain.AuthContext) (domain.Comment, error) {
	existing, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, commentErr(err)
	}
	if existing.UserID != actor.UserID && actor.Role != domain.RoleAdmin && actor.Role != domain.RoleModerator {
		return domain.Comment{}, domain.ErrForbidden
	}
	existing.Content = content
	existing.UpdatedAt = s.now()
	updated, err := s.Comments.Update(ctx, *existing)
	if err != nil {
		return domain.Comment{}, commentErr(err)
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	exists, err := s.Comments.Exists(ctx, commentID)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Message: commentNotFoundMessage}
	}
	return commentErr(s.Comments.Delete(ctx, commentID))
}

func commentErr(err error) error {
	var nf *domain.NotFoundError
	if err != nil && errors.Is(err, domain.ErrNotFound) && !errors.As(err, &nf) {
		return &domain.NotFoundError{Message: commentNotFoundMessage}
	}
	return err
}
