package model

import (
	"time"
)

type ProjectType string

const (
	ProjectSprint      ProjectType = "sprint"
	ProjectRoadmap     ProjectType = "product_roadmap"
	ProjectMarketing   ProjectType = "marketing_campaign"
	ProjectBugTracking ProjectType = "bug_tracking"
	ProjectOperational ProjectType = "operational"
	ProjectOngoing     ProjectType = "ongoing"
)

// ProjectTypes lists every archetype a generated project can take.
var ProjectTypes = []ProjectType{
	ProjectSprint,
	ProjectRoadmap,
	ProjectMarketing,
	ProjectBugTracking,
	ProjectOperational,
	ProjectOngoing,
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

type Project struct {
	ID             string `gorm:"primary_key"`
	OrganizationID string `gorm:"not null;index"`
	TeamID         *string
	OwnerID        string        `gorm:"not null"`
	Name           string        `gorm:"uniqueIndex;not null"`
	Status         ProjectStatus `gorm:"type:varchar(20);default:'active'"`
	ProjectType    ProjectType   `gorm:"type:varchar(50)"`
	IsArchived     bool          `gorm:"default:false"`
	CreatedAt      time.Time
}

type Section struct {
	ID           string `gorm:"primary_key"`
	ProjectID    string `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	DisplayOrder int
	CreatedAt    time.Time
}
