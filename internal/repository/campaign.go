package repository

import (
	"context"
	"errors"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrCampaignNotFound = errors.New("CAMPAIGN_NOT_FOUND")
var ErrCampaignDuplicate = errors.New("CAMPAIGN_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

// statusPredecessors lists the statuses a campaign may move forward from.
// Transitions are monotonic: a campaign never regresses.
var statusPredecessors = map[model.CampaignStatus][]model.CampaignStatus{
	model.CampaignStatusScheduled: {model.CampaignStatusPending},
	model.CampaignStatusSending:   {model.CampaignStatusPending, model.CampaignStatusScheduled, model.CampaignStatusSending},
	model.CampaignStatusSent:      {model.CampaignStatusSending},
	model.CampaignStatusFailed:    {model.CampaignStatusPending, model.CampaignStatusScheduled, model.CampaignStatusSending},
}

// CampaignStats is the aggregate view served by the stats endpoint.
type CampaignStats struct {
	TotalCampaigns     int
	SentCampaigns      int
	PendingCampaigns   int
	FailedCampaigns    int
	ScheduledCampaigns int
	TotalMessagesSent  int
	TotalRecipients    int
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *model.Campaign) error
	GetByCampaignID(campaignID string) (*model.Campaign, error)
	List(limit, offset int) ([]model.Campaign, error)
	Count() (int, error)
	UpdateStatus(ctx context.Context, campaignID string, status model.CampaignStatus, sentCount *int) error
	FindMostRecentTwoWayMatch(phone string) (*TwoWayMatch, error)
	Stats() (CampaignStats, error)
}

// TwoWayMatch pairs the most recent two-way campaign a phone number belongs
// to with that number's recipient row (for personalization).
type TwoWayMatch struct {
	Campaign  model.Campaign
	Recipient model.Recipient
}

type Campaign struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &Campaign{db: db}
}

func (c *Campaign) Create(ctx context.Context, campaign *model.Campaign) error {
	db := GetTx(ctx, c.db)
	err := db.Create(campaign).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrCampaignDuplicate
	}

	return err
}

func (c *Campaign) GetByCampaignID(campaignID string) (*model.Campaign, error) {
	var campaign model.Campaign

	err := c.db.Where("campaign_id = ?", campaignID).First(&campaign).Error
	if err == nil {
		return &campaign, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCampaignNotFound
	}

	return nil, err
}

func (c *Campaign) List(limit, offset int) ([]model.Campaign, error) {
	var campaigns []model.Campaign

	err := c.db.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (c *Campaign) Count() (int, error) {
	var count int64

	err := c.db.Model(&model.Campaign{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// UpdateStatus moves the campaign forward. The WHERE clause restricts the
// update to valid predecessor statuses, so a stale or replayed update never
// regresses a campaign; such updates report ErrNoRowsAffected.
func (c *Campaign) UpdateStatus(ctx context.Context, campaignID string, status model.CampaignStatus, sentCount *int) error {
	preds, ok := statusPredecessors[status]
	if !ok {
		return ErrNoRowsAffected
	}

	updates := map[string]interface{}{"status": status}
	if sentCount != nil {
		updates["sent_count"] = *sentCount
	}

	db := GetTx(ctx, c.db)
	result := db.Model(&model.Campaign{}).
		Where("campaign_id = ? AND status IN ?", campaignID, preds).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// FindMostRecentTwoWayMatch resolves an inbound phone number to the most
// recently created two-way campaign it was targeted by. Ties on created_at
// break toward the higher row id, consistently.
func (c *Campaign) FindMostRecentTwoWayMatch(phone string) (*TwoWayMatch, error) {
	var recipient model.Recipient

	err := c.db.Table("campaign_recipients").
		Select("campaign_recipients.*").
		Joins("JOIN campaigns ON campaigns.campaign_id = campaign_recipients.campaign_id").
		Where("campaign_recipients.phone_number = ? AND campaigns.response_mode = ?",
			phone, model.ResponseModeTwoWay).
		Order("campaigns.created_at DESC, campaigns.id DESC").
		First(&recipient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	campaign, err := c.GetByCampaignID(recipient.CampaignID)
	if err != nil {
		return nil, err
	}

	return &TwoWayMatch{Campaign: *campaign, Recipient: recipient}, nil
}

func (c *Campaign) Stats() (CampaignStats, error) {
	var stats CampaignStats

	rows := []struct {
		Status model.CampaignStatus
		Count  int
	}{}

	err := c.db.Model(&model.Campaign{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return CampaignStats{}, err
	}

	for _, row := range rows {
		stats.TotalCampaigns += row.Count
		switch row.Status {
		case model.CampaignStatusSent:
			stats.SentCampaigns += row.Count
		case model.CampaignStatusPending:
			stats.PendingCampaigns += row.Count
		case model.CampaignStatusFailed:
			stats.FailedCampaigns += row.Count
		case model.CampaignStatusScheduled:
			stats.ScheduledCampaigns += row.Count
		}
	}

	totals := struct {
		SentCount       int
		TotalRecipients int
	}{}

	err = c.db.Model(&model.Campaign{}).
		Select("COALESCE(SUM(sent_count), 0) AS sent_count, COALESCE(SUM(total_recipients), 0) AS total_recipients").
		Scan(&totals).Error
	if err != nil {
		return CampaignStats{}, err
	}

	stats.TotalMessagesSent = totals.SentCount
	stats.TotalRecipients = totals.TotalRecipients

	return stats, nil
}
