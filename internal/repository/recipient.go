package repository

import (
	"context"
	"errors"
	"time"

	"github.com/0niran/rhb-send-backend/internal/model"
	"gorm.io/gorm"
)

var ErrRecipientNotFound = errors.New("RECIPIENT_NOT_FOUND")

type RecipientRepository interface {
	CreateBatch(ctx context.Context, recipients []model.Recipient) error
	ListByCampaign(campaignID string) ([]model.Recipient, error)
	ListPendingByCampaign(campaignID string) ([]model.Recipient, error)
	UpdateMessageStatus(ctx context.Context, campaignID, phone string, status model.RecipientStatus) error
	UpdateResponse(ctx context.Context, campaignID, phone, keyword string, receivedAt time.Time) error
}

type Recipient struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &Recipient{db: db}
}

func (r *Recipient) CreateBatch(ctx context.Context, recipients []model.Recipient) error {
	if len(recipients) == 0 {
		return nil
	}

	db := GetTx(ctx, r.db)
	return db.CreateInBatches(recipients, 100).Error
}

func (r *Recipient) ListByCampaign(campaignID string) ([]model.Recipient, error) {
	var recipients []model.Recipient

	err := r.db.Where("campaign_id = ?", campaignID).
		Order("id ASC").
		Find(&recipients).Error
	if err != nil {
		return nil, err
	}

	return recipients, nil
}

func (r *Recipient) ListPendingByCampaign(campaignID string) ([]model.Recipient, error) {
	var recipients []model.Recipient

	err := r.db.Where("campaign_id = ? AND message_status = ?", campaignID, model.RecipientStatusPending).
		Order("id ASC").
		Find(&recipients).Error
	if err != nil {
		return nil, err
	}

	return recipients, nil
}

func (r *Recipient) UpdateMessageStatus(ctx context.Context, campaignID, phone string, status model.RecipientStatus) error {
	db := GetTx(ctx, r.db)
	result := db.Model(&model.Recipient{}).
		Where("campaign_id = ? AND phone_number = ?", campaignID, phone).
		Update("message_status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecipientNotFound
	}

	return nil
}

// UpdateResponse records the classified reply. Re-processing the same reply
// overwrites keyword and timestamp; there is no dedup by provider message id.
func (r *Recipient) UpdateResponse(ctx context.Context, campaignID, phone, keyword string, receivedAt time.Time) error {
	db := GetTx(ctx, r.db)
	result := db.Model(&model.Recipient{}).
		Where("campaign_id = ? AND phone_number = ?", campaignID, phone).
		Updates(map[string]interface{}{
			"response_keyword":     keyword,
			"response_received_at": receivedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecipientNotFound
	}

	return nil
}
