package mocks

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type MessageLogRepository struct {
	mock.Mock
}

func (m *MessageLogRepository) Create(ctx context.Context, entry *model.MessageLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MessageLogRepository) ListByCampaign(campaignID string, limit, offset int) ([]model.MessageLog, error) {
	args := m.Called(campaignID, limit, offset)
	return args.Get(0).([]model.MessageLog), args.Error(1)
}
