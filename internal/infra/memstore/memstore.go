// Package memstore keeps every resource in process memory. It backs no-db mode and the
// HTTP tests; contents are lost on restart.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"contesthub/internal/domain"
)

type Store struct {
	Users    *UserStore
	Contests *ContestStore
	Comments *CommentStore
	Flags    *FlagStore
}

func New() *Store {
	return &Store{
		Users:    &UserStore{data: map[string]domain.User{}},
		Contests: &ContestStore{data: map[string]domain.Contest{}, deleted: map[string]tombstone{}},
		Comments: &CommentStore{data: map[string]domain.Comment{}},
		Flags:    &FlagStore{data: map[string]domain.Flag{}},
	}
}

func key(id string) string {
	return strings.ToLower(id)
}

type UserStore struct {
	mu   sync.RWMutex
	data map[string]domain.User
}

func (s *UserStore) Put(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[user.UserID] = user
}

func (s *UserStore) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.data[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

// ContestStore soft-deletes like the postgres repository: deleted rows move to a
// tombstone set and stay invisible to every read.
type ContestStore struct {
	mu      sync.RWMutex
	data    map[string]domain.Contest
	deleted map[string]tombstone
}

type tombstone struct {
	contest   domain.Contest
	deletedAt time.Time
}

func (s *ContestStore) Create(_ context.Context, contest domain.Contest) (domain.Contest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(contest.ID)] = contest
	return contest, nil
}

func (s *ContestStore) GetByID(_ context.Context, contestID string) (*domain.Contest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contest, ok := s.data[key(contestID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &contest, nil
}

func (s *ContestStore) List(_ context.Context, filter domain.ContestFilter) ([]domain.Contest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contest, 0, len(s.data))
	for _, contest := range s.data {
		if filter.Status != "" && contest.Status != filter.Status {
			continue
		}
		out = append(out, contest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *ContestStore) Update(_ context.Context, contest domain.Contest) (domain.Contest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key(contest.ID)]; !ok {
		return domain.Contest{}, domain.ErrNotFound
	}
	s.data[key(contest.ID)] = contest
	return contest, nil
}

func (s *ContestStore) Delete(_ context.Context, contestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	contest, ok := s.data[key(contestID)]
	if !ok {
		return domain.ErrNotFound
	}
	s.deleted[key(contestID)] = tombstone{contest: contest, deletedAt: time.Now().UTC()}
	delete(s.data, key(contestID))
	return nil
}

func (s *ContestStore) Exists(_ context.Context, contestID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key(contestID)]
	return ok, nil
}

type CommentStore struct {
	mu   sync.RWMutex
	data map[string]domain.Comment
}

func (s *CommentStore) Create(_ context.Context, comment domain.Comment) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(comment.ID)] = comment
	return comment, nil
}

func (s *CommentStore) GetByID(_ context.Context, commentID string) (*domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.data[key(commentID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &comment, nil
}

func (s *CommentStore) ListByContest(_ context.Context, contestID string) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Comment, 0)
	for _, comment := range s.data {
		if key(comment.ContestID) == key(contestID) {
			out = append(out, comment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *CommentStore) Update(_ context.Context, comment domain.Comment) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key(comment.ID)]; !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	s.data[key(comment.ID)] = comment
	return comment, nil
}

func (s *CommentStore) Delete(_ context.Context, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key(commentID)]; !ok {
		return domain.ErrNotFound
	}
	delete(s.data, key(commentID))
	return nil
}

func (s *CommentStore) Exists(_ context.Context, commentID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key(commentID)]
	return ok, nil
}

type FlagStore struct {
	mu   sync.RWMutex
	data map[string]domain.Flag
}

func (s *FlagStore) Create(_ context.Context, flag domain.Flag) (domain.Flag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(flag.ID)] = flag
	return flag, nil
}

func (s *FlagStore) GetByID(_ context.Context, flagID string) (*domain.Flag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flag, ok := s.data[key(flagID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &flag, nil
}

func (s *FlagStore) List(_ context.Context, filter domain.FlagFilter) ([]domain.Flag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Flag, 0, len(s.data))
	for _, flag := range s.data {
		if filter.Status != "" && flag.Status != filter.Status {
			continue
		}
		out = append(out, flag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *FlagStore) Update(_ context.Context, flag domain.Flag) (domain.Flag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key(flag.ID)]; !ok {
		return domain.Flag{}, domain.ErrNotFound
	}
	s.data[key(flag.ID)] = flag
	return flag, nil
}

func (s *FlagStore) Delete(_ context.Context, flagID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key(flagID)]; !ok {
		return domain.ErrNotFound
	}
	delete(s.data, key(flagID))
	return nil
}
