package db

import (
	"time"

	"gorm.io/gorm"
)

type UserModel struct {
	UserID    string    `gorm:"column:user_id;type:uuid;primaryKey"`
	UserType  string    `gorm:"column:user_type;not null"`
	Username  string    `gorm:"column:username"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (UserModel) TableName() string { return "users" }

type ContestModel struct {
	ContestID    string         `gorm:"column:contest_id;type:uuid;primaryKey"`
	ContestTitle string         `gorm:"column:contest_title;not null"`
	Description  string         `gorm:"column:description"`
	StartDate    time.Time      `gorm:"column:start_date;not null"`
	EndDate      time.Time      `gorm:"column:end_date;not null"`
	Status       string         `gorm:"column:status;not null"`
	CreatedBy    string         `gorm:"column:created_by;type:uuid"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ContestModel) TableName() string { return "contests" }

type CommentModel struct {
	CommentID string    `gorm:"column:comment_id;type:uuid;primaryKey"`
	ContestID string    `gorm:"column:contest_id;type:uuid;index;not null"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null"`
	Content   string    `gorm:"column:content;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (CommentModel) TableName() string { return "comments" }

type FlagModel struct {
	FlagID     string    `gorm:"column:flag_id;type:uuid;primaryKey"`
	TargetType string    `gorm:"column:target_type;not null"`
	TargetID   string    `gorm:"column:target_id;type:uuid;index;not null"`
	Reason     string    `gorm:"column:reason;not null"`
	Status     string    `gorm:"column:status;not null"`
	ReportedBy string    `gorm:"column:reported_by;type:uuid"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (FlagModel) TableName() string { return "flags" }
