package domain

import "time"

type Comment struct {
	ID        string
	ContestID string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
