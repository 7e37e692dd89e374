package model

import "time"

type RecipientStatus string

const (
	RecipientStatusPending RecipientStatus = "pending"
	RecipientStatusSent    RecipientStatus = "sent"
	RecipientStatusFailed  RecipientStatus = "failed"
)

// Recipient is one phone number targeted by a campaign. Rows are appended at
// campaign creation and mutated only through status/response fields.
type Recipient struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	CampaignID         string          `gorm:"column:campaign_id;index:idx_recipient_campaign_phone"`
	PhoneNumber        string          `gorm:"column:phone_number;index:idx_recipient_campaign_phone;index:idx_recipient_phone"`
	FirstName          string          `gorm:"column:first_name"`
	LastName           string          `gorm:"column:last_name"`
	MessageStatus      RecipientStatus `gorm:"column:message_status"`
	ResponseKeyword    *string         `gorm:"column:response_keyword"`
	ResponseReceivedAt *time.Time      `gorm:"column:response_received_at"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at"`
}

func (Recipient) TableName() string { return "campaign_recipients" }
