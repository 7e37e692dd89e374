package model

import "time"

type ResponseMode string

const (
	ResponseModeOneWay ResponseMode = "one-way"
	ResponseModeTwoWay ResponseMode = "two-way"
)

type CampaignStatus string

const (
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusSent      CampaignStatus = "sent"
	CampaignStatusFailed    CampaignStatus = "failed"
)

// Campaign is one bulk send with a single message template and a recipient
// list. Two-way campaigns carry all three response templates; one-way
// campaigns carry none.
type Campaign struct {
	ID              int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	CampaignID      string         `gorm:"column:campaign_id;uniqueIndex"`
	Name            string         `gorm:"column:campaign_name"`
	MessageContent  string         `gorm:"column:message_content"`
	SenderID        string         `gorm:"column:sender_id"`
	ResponseMode    ResponseMode   `gorm:"column:response_mode"`
	YesResponse     *string        `gorm:"column:yes_response"`
	NoResponse      *string        `gorm:"column:no_response"`
	InvalidResponse *string        `gorm:"column:invalid_response"`
	Status          CampaignStatus `gorm:"column:status"`
	TotalRecipients int            `gorm:"column:total_recipients"`
	SentCount       int            `gorm:"column:sent_count"`
	ScheduledDate   *string        `gorm:"column:scheduled_date"`
	ScheduledTime   *string        `gorm:"column:scheduled_time"`
	Timezone        *string        `gorm:"column:timezone"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
}

func (Campaign) TableName() string { return "campaigns" }

// IsTwoWay reports whether the campaign expects keyword replies.
func (c *Campaign) IsTwoWay() bool { return c.ResponseMode == ResponseModeTwoWay }

// Terminal reports whether the campaign status can no longer move forward.
func (s CampaignStatus) Terminal() bool {
	return s == CampaignStatusSent || s == CampaignStatusFailed
}
