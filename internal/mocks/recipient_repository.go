package mocks

import (
	"context"
	"time"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type RecipientRepository struct {
	mock.Mock
}

func (r *RecipientRepository) CreateBatch(ctx context.Context, recipients []model.Recipient) error {
	args := r.Called(ctx, recipients)
	return args.Error(0)
}

func (r *RecipientRepository) ListByCampaign(campaignID string) ([]model.Recipient, error) {
	args := r.Called(campaignID)
	return args.Get(0).([]model.Recipient), args.Error(1)
}

func (r *RecipientRepository) ListPendingByCampaign(campaignID string) ([]model.Recipient, error) {
	args := r.Called(campaignID)
	return args.Get(0).([]model.Recipient), args.Error(1)
}

func (r *RecipientRepository) UpdateMessageStatus(ctx context.Context, campaignID, phone string, status model.RecipientStatus) error {
	args := r.Called(ctx, campaignID, phone, status)
	return args.Error(0)
}

func (r *RecipientRepository) UpdateResponse(ctx context.Context, campaignID, phone, keyword string, receivedAt time.Time) error {
	args := r.Called(ctx, campaignID, phone, keyword, receivedAt)
	return args.Error(0)
}
