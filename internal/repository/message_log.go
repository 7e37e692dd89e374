package repository

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/model"
	"gorm.io/gorm"
)

type MessageLogRepository interface {
	Create(ctx context.Context, entry *model.MessageLog) error
	ListByCampaign(campaignID string, limit, offset int) ([]model.MessageLog, error)
}

type MessageLog struct {
	db *gorm.DB
}

func NewMessageLogRepository(db *gorm.DB) MessageLogRepository {
	return &MessageLog{db: db}
}

func (m *MessageLog) Create(ctx context.Context, entry *model.MessageLog) error {
	db := GetTx(ctx, m.db)
	return db.Create(entry).Error
}

func (m *MessageLog) ListByCampaign(campaignID string, limit, offset int) ([]model.MessageLog, error) {
	var entries []model.MessageLog

	err := m.db.Where("campaign_id = ?", campaignID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
