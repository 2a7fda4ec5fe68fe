package domain

import "time"

type ContestStatus string

const (
	ContestUpcoming  ContestStatus = "upcoming"
	ContestOngoing   ContestStatus = "ongoing"
	ContestCompleted ContestStatus = "completed"
)

// ContestStatuses is ordered; the first entry is the default for new contests.
var ContestStatuses = []ContestStatus{ContestUpcoming, ContestOngoing, ContestCompleted}

func (s ContestStatus) Valid() bool {
	switch s {
	case ContestUpcoming, ContestOngoing, ContestCompleted:
		return true
	default:
		return false
	}
}

type Contest struct {
	ID          string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      ContestStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContestPatch holds the fields of an update; nil fields are left unchanged.
type ContestPatch struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *ContestStatus
}

func (p ContestPatch) Apply(c Contest) Contest {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}

type ContestFilter struct {
	Status ContestStatus
}
