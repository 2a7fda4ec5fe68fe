package domain

import "time"

type FlagTarget string

const (
	FlagTargetContest FlagTarget = "contest"
	FlagTargetComment FlagTarget = "comment"
)

var FlagTargets = []FlagTarget{FlagTargetContest, FlagTargetComment}

func (t FlagTarget) Valid() bool {
	switch t {
	case FlagTargetContest, FlagTargetComment:
		return true
	default:
		return false
	}
}

type FlagStatus string

const (
	FlagPending   FlagStatus = "pending"
	FlagReviewed  FlagStatus = "reviewed"
	FlagDismissed FlagStatus = "dismissed"
)

// FlagStatuses is ordered; the first entry is the default for new flags.
var FlagStatuses = []FlagStatus{FlagPending, FlagReviewed, FlagDismissed}

func (s FlagStatus) Valid() bool {
	switch s {
	case FlagPending, FlagReviewed, FlagDismissed:
		return true
	default:
		return false
	}
}

type Flag struct {
	ID         string
	TargetType FlagTarget
	TargetID   string
	Reason     string
	Status     FlagStatus
	ReportedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type FlagPatch struct {
	Reason *string
	Status *FlagStatus
}

func (p FlagPatch) Apply(f Flag) Flag {
	if p.Reason != nil {
		f.Reason = *p.Reason
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	return f
}

type FlagFilter struct {
	Status FlagStatus
}
