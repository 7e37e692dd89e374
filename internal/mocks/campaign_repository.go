package mocks

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

type CampaignRepository struct {
	mock.Mock
}

func (c *CampaignRepository) Create(ctx context.Context, campaign *model.Campaign) error {
	args := c.Called(ctx, campaign)
	return args.Error(0)
}

func (c *CampaignRepository) GetByCampaignID(campaignID string) (*model.Campaign, error) {
	args := c.Called(campaignID)
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (c *CampaignRepository) List(limit, offset int) ([]model.Campaign, error) {
	args := c.Called(limit, offset)
	return args.Get(0).([]model.Campaign), args.Error(1)
}

func (c *CampaignRepository) Count() (int, error) {
	args := c.Called()
	return args.Int(0), args.Error(1)
}

func (c *CampaignRepository) UpdateStatus(ctx context.Context, campaignID string, status model.CampaignStatus, sentCount *int) error {
	args := c.Called(ctx, campaignID, status, sentCount)
	return args.Error(0)
}

func (c *CampaignRepository) FindMostRecentTwoWayMatch(phone string) (*repository.TwoWayMatch, error) {
	args := c.Called(phone)
	return args.Get(0).(*repository.TwoWayMatch), args.Error(1)
}

func (c *CampaignRepository) Stats() (repository.CampaignStats, error) {
	args := c.Called()
	return args.Get(0).(repository.CampaignStats), args.Error(1)
}
