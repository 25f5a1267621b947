package model

import (
	"time"
)

type MembershipRole string

const (
	RoleLead   MembershipRole = "lead"
	RoleMember MembershipRole = "member"
)

type User struct {
	ID             string `gorm:"primary_key"`
	OrganizationID string `gorm:"not null;index"`
	Email          string `gorm:"uniqueIndex;not null"`
	Name           string `gorm:"not null"`
	FirstName      string
	LastName       string
	CreatedAt      time.Time
	IsActive       bool `gorm:"default:true"`
	LastSeen       *time.Time
}

type TeamMembership struct {
	ID       string `gorm:"primary_key"`
	TeamID   string `gorm:"not null;index"`
	UserID   string `gorm:"not null;index"`
	JoinedAt time.Time
	Role     MembershipRole `gorm:"type:varchar(20);default:'member'"`
	IsActive bool           `gorm:"default:true"`
}
