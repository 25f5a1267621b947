package model

import (
	"time"
)

// Organization is the root tenant entity. Every other record in a run hangs
// off exactly one organization.
type Organization struct {
	ID            string    `gorm:"primary_key"`
	Name          string    `gorm:"uniqueIndex;not null"`
	Domain        string    `gorm:"not null"`
	Industry      string
	EmployeeCount int
	CreatedAt     time.Time
}

type Team struct {
	ID             string `gorm:"primary_key"`
	OrganizationID string `gorm:"not null;uniqueIndex:idx_org_team_name"`
	Name           string `gorm:"not null;uniqueIndex:idx_org_team_name"`
	LeadUserID     *string
	CreatedAt      time.Time
}
