package model

import (
	"time"
)

// Task priorities, 1 is most urgent.
const (
	PriorityUrgent = 1
	PriorityHigh   = 2
	PriorityNormal = 3
	PriorityLow    = 4
)

type Task struct {
	ID             string `gorm:"primary_key"`
	ProjectID      string `gorm:"not null;index"`
	SectionID      *string
	Name           string `gorm:"not null"`
	Description    *string
	CreatedAt      time.Time
	CreatedBy      string `gorm:"not null"`
	AssigneeID     *string
	DueDate        *time.Time `gorm:"type:date"`
	Completed      bool       `gorm:"default:false"`
	CompletedAt    *time.Time
	Priority       int
	EstimatedHours *float64
}

type Subtask struct {
	ID           string `gorm:"primary_key"`
	ParentTaskID string `gorm:"not null;index"`
	ProjectID    string `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	CreatedAt    time.Time
	AssigneeID   *string
	DueDate      *time.Time `gorm:"type:date"`
	Completed    bool       `gorm:"default:false"`
	CompletedAt  *time.Time
	DisplayOrder int
}

type Comment struct {
	ID        string `gorm:"primary_key"`
	TaskID    string `gorm:"not null;index"`
	UserID    string `gorm:"not null"`
	Text      string `gorm:"not null"`
	CreatedAt time.Time
}
