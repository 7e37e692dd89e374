package model

import "time"

type MessageDirection string

const (
	DirectionOutbound MessageDirection = "outbound"
	DirectionInbound  MessageDirection = "inbound"
)

const (
	MessageLogStatusSent   = "sent"
	MessageLogStatusFailed = "failed"
)

// MessageLog is the append-only audit trail of every message that crossed the
// transport, in either direction. Rows are immutable once written.
// CampaignID is nil for inbound messages with no resolvable campaign.
type MessageLog struct {
	ID              int64            `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	CampaignID      *string          `gorm:"column:campaign_id;index"`
	PhoneNumber     string           `gorm:"column:phone_number;index"`
	Direction       MessageDirection `gorm:"column:direction"`
	Content         string           `gorm:"column:content"`
	ProviderMsgID   *string          `gorm:"column:provider_msg_id"`
	Status          *string          `gorm:"column:status"`
	ResponseKeyword *string          `gorm:"column:response_keyword"`
	CreatedAt       time.Time        `gorm:"column:created_at"`
}

func (MessageLog) TableName() string { return "message_log" }
