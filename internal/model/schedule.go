package model

import "time"

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "pending"
	ScheduleStatusSent      ScheduleStatus = "sent"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
	ScheduleStatusFailed    ScheduleStatus = "failed"
)

// Schedule defers a campaign dispatch to a point in time. ScheduledFor is
// stored in UTC, computed from the campaign's wall-clock date/time and IANA
// timezone at creation.
type Schedule struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	ScheduleID   string         `gorm:"column:schedule_id;uniqueIndex"`
	CampaignID   string         `gorm:"column:campaign_id;index"`
	ScheduledFor time.Time      `gorm:"column:scheduled_for;index"`
	Timezone     string         `gorm:"column:timezone"`
	Status       ScheduleStatus `gorm:"column:status"`
	SentAt       *time.Time     `gorm:"column:sent_at"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (Schedule) TableName() string { return "scheduled_campaigns" }
