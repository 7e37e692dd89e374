package model

import (
	"time"

	"gorm.io/datatypes"
)

// Template is a reusable message body with a declared set of placeholder
// variables. Variables holds a JSON array of the placeholder names the
// template uses, e.g. ["firstName","fullName"].
type Template struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TemplateID  string         `gorm:"column:template_id;uniqueIndex"`
	Name        string         `gorm:"column:template_name"`
	Category    string         `gorm:"column:category"`
	Content     string         `gorm:"column:content"`
	Variables   datatypes.JSON `gorm:"column:variables"`
	Description string         `gorm:"column:description"`
	UsageCount  int            `gorm:"column:usage_count"`
	IsActive    bool           `gorm:"column:is_active"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (Template) TableName() string { return "message_templates" }
