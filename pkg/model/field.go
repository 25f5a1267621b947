package model

import (
	"time"
)

type FieldType string

const (
	FieldText         FieldType = "Text"
	FieldSingleSelect FieldType = "SingleSelect"
	FieldMultiSelect  FieldType = "MultiSelect"
	FieldNumber       FieldType = "Number"
	FieldDropdown     FieldType = "Dropdown"
)

type CustomFieldDefinition struct {
	ID             string    `gorm:"primary_key"`
	OrganizationID string    `gorm:"not null;uniqueIndex:idx_org_field_name"`
	Name           string    `gorm:"not null;uniqueIndex:idx_org_field_name"`
	FieldType      FieldType `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
}

type CustomFieldValue struct {
	ID            string `gorm:"primary_key"`
	CustomFieldID string `gorm:"not null;index"`
	TaskID        string `gorm:"not null;index"`
	Value         string
	CreatedAt     time.Time
}

type Tag struct {
	ID             string `gorm:"primary_key"`
	OrganizationID string `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	Color          string
	CreatedAt      time.Time
	CreatedBy      string
}

type TaskTag struct {
	ID      string `gorm:"primary_key"`
	TaskID  string `gorm:"not null;index"`
	TagID   string `gorm:"not null;index"`
	AddedAt time.Time
}
