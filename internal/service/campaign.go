package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/0niran/rhb-send-backend/internal/constants"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dispatchQueue = "campaign.dispatch"

type CampaignService interface {
	CreateCampaign(ctx context.Context, cmd CreateCampaignCommand) (CreateCampaignResponse, error)
	GetCampaign(campaignID string) (*CampaignDetails, error)
	ListCampaigns(limit, offset int) ([]model.Campaign, int, error)
	ListMessages(campaignID string, limit, offset int) ([]model.MessageLog, error)
	Stats() (repository.CampaignStats, error)
}

// CampaignDetails is a campaign with its full recipient list.
type CampaignDetails struct {
	Campaign   model.Campaign
	Recipients []model.Recipient
}

type campaignService struct {
	campaignRepo  repository.CampaignRepository
	recipientRepo repository.RecipientRepository
	scheduleRepo  repository.ScheduleRepository
	logRepo       repository.MessageLogRepository
	templates     TemplateService
	txm           repository.TxManager
	publisher     mq.Publisher
	logger        *zap.Logger
}

func NewCampaignService(campaignRepo repository.CampaignRepository, recipientRepo repository.RecipientRepository,
	scheduleRepo repository.ScheduleRepository, logRepo repository.MessageLogRepository, templates TemplateService,
	txm repository.TxManager, publisher mq.Publisher, logger *zap.Logger) CampaignService {
	return &campaignService{
		campaignRepo:  campaignRepo,
		recipientRepo: recipientRepo,
		scheduleRepo:  scheduleRepo,
		logRepo:       logRepo,
		templates:     templates,
		txm:           txm,
		publisher:     publisher,
		logger:        logger,
	}
}

func (c *campaignService) CreateCampaign(ctx context.Context, cmd CreateCampaignCommand) (CreateCampaignResponse, error) {
	if cmd.Name == "" || cmd.SenderID == "" || len(cmd.Recipients) == 0 ||
		(cmd.MessageContent == "" && cmd.TemplateID == "") {
		return CreateCampaignResponse{}, NewServiceError(constants.ErrCodeMissingFields,
			errors.New(constants.ErrMsgMissingFields))
	}

	usedTemplateID := ""
	if cmd.MessageContent == "" {
		template, err := c.templates.GetTemplate(cmd.TemplateID)
		if err != nil {
			return CreateCampaignResponse{}, err
		}

		cmd.MessageContent = template.Content
		usedTemplateID = template.TemplateID
	}

	mode := model.ResponseMode(cmd.ResponseMode)
	if mode == "" {
		mode = model.ResponseModeOneWay
	}
	if mode != model.ResponseModeOneWay && mode != model.ResponseModeTwoWay {
		return CreateCampaignResponse{}, NewServiceError(constants.ErrCodeInvalidResponseMode,
			fmt.Errorf("unknown response mode %q", cmd.ResponseMode))
	}
	if mode == model.ResponseModeTwoWay &&
		(cmd.YesResponse == "" || cmd.NoResponse == "" || cmd.InvalidResponse == "") {
		return CreateCampaignResponse{}, NewServiceError(constants.ErrCodeInvalidResponseMode,
			errors.New(constants.ErrMsgInvalidResponseMode))
	}

	var scheduledFor time.Time
	if !cmd.SendImmediately {
		var err error
		scheduledFor, err = resolveScheduleTime(cmd.ScheduledDate, cmd.ScheduledTime, cmd.Timezone)
		if err != nil {
			return CreateCampaignResponse{}, NewServiceError(constants.ErrCodeInvalidSchedule, err)
		}
	}

	valid, invalid := ValidateRecipients(cmd.Recipients)
	if len(valid) == 0 {
		return CreateCampaignResponse{}, NewServiceError(constants.ErrCodeNoValidRecipients,
			errors.New(constants.ErrMsgNoValidRecipients))
	}

	campaign := &model.Campaign{
		CampaignID:      uuid.NewString(),
		Name:            cmd.Name,
		MessageContent:  cmd.MessageContent,
		SenderID:        cmd.SenderID,
		ResponseMode:    mode,
		Status:          model.CampaignStatusPending,
		TotalRecipients: len(valid),
	}
	if mode == model.ResponseModeTwoWay {
		campaign.YesResponse = &cmd.YesResponse
		campaign.NoResponse = &cmd.NoResponse
		campaign.InvalidResponse = &cmd.InvalidResponse
	}
	if !cmd.SendImmediately {
		campaign.Status = model.CampaignStatusScheduled
		campaign.ScheduledDate = &cmd.ScheduledDate
		campaign.ScheduledTime = &cmd.ScheduledTime
		campaign.Timezone = &cmd.Timezone
	}

	recipients := make([]model.Recipient, 0, len(valid))
	for _, r := range valid {
		recipients = append(recipients, model.Recipient{
			CampaignID:    campaign.CampaignID,
			PhoneNumber:   r.PhoneNumber,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			MessageStatus: model.RecipientStatusPending,
		})
	}

	err := c.txm.WithTx(ctx, func(txCtx context.Context) error {
		if err := c.campaignRepo.Create(txCtx, campaign); err != nil {
			return err
		}

		if err := c.recipientRepo.CreateBatch(txCtx, recipients); err != nil {
			return err
		}

		if !cmd.SendImmediately {
			schedule := &model.Schedule{
				ScheduleID:   uuid.NewString(),
				CampaignID:   campaign.CampaignID,
				ScheduledFor: scheduledFor,
				Timezone:     cmd.Timezone,
				Status:       model.ScheduleStatusPending,
			}
			if err := c.scheduleRepo.Create(txCtx, schedule); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.logger.Error("Failed to create campaign",
			zap.String("name", cmd.Name),
			zap.Error(err))
		return CreateCampaignResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if usedTemplateID != "" {
		if err := c.templates.RecordUsage(ctx, usedTemplateID); err != nil {
			c.logger.Warn("Failed to record template usage",
				zap.String("templateID", usedTemplateID),
				zap.String("campaignID", campaign.CampaignID),
				zap.Error(err))
		}
	}

	if cmd.SendImmediately {
		if err := c.publishDispatch(ctx, campaign.CampaignID); err != nil {
			c.logger.Error("Campaign created but dispatch enqueue failed",
				zap.String("campaignID", campaign.CampaignID),
				zap.Error(err))
			return CreateCampaignResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
		}
	}

	c.logger.Info("Campaign created",
		zap.String("campaignID", campaign.CampaignID),
		zap.String("status", string(campaign.Status)),
		zap.Int("validRecipients", len(valid)),
		zap.Int("invalidRecipients", len(invalid)))

	return CreateCampaignResponse{
		CampaignID:        campaign.CampaignID,
		Name:              campaign.Name,
		Status:            string(campaign.Status),
		ValidRecipients:   len(valid),
		InvalidRecipients: invalid,
	}, nil
}

func (c *campaignService) GetCampaign(campaignID string) (*CampaignDetails, error) {
	campaign, err := c.campaignRepo.GetByCampaignID(campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, NewServiceError(constants.ErrCodeCampaignNotFound, err)
		}

		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	recipients, err := c.recipientRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return &CampaignDetails{Campaign: *campaign, Recipients: recipients}, nil
}

func (c *campaignService) ListCampaigns(limit, offset int) ([]model.Campaign, int, error) {
	campaigns, err := c.campaignRepo.List(limit, offset)
	if err != nil {
		return nil, 0, NewServiceError(ErrCodeDatabase, err)
	}

	total, err := c.campaignRepo.Count()
	if err != nil {
		return nil, 0, NewServiceError(ErrCodeDatabase, err)
	}

	return campaigns, total, nil
}

func (c *campaignService) ListMessages(campaignID string, limit, offset int) ([]model.MessageLog, error) {
	if _, err := c.campaignRepo.GetByCampaignID(campaignID); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, NewServiceError(constants.ErrCodeCampaignNotFound, err)
		}

		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	messages, err := c.logRepo.ListByCampaign(campaignID, limit, offset)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return messages, nil
}

func (c *campaignService) Stats() (repository.CampaignStats, error) {
	stats, err := c.campaignRepo.Stats()
	if err != nil {
		return repository.CampaignStats{}, NewServiceError(ErrCodeDatabase, err)
	}

	return stats, nil
}

func (c *campaignService) publishDispatch(ctx context.Context, campaignID string) error {
	body, err := json.Marshal(DispatchCampaignCommand{CampaignID: campaignID})
	if err != nil {
		return err
	}

	return c.publisher.Publish(ctx, "", dispatchQueue, body)
}

// resolveScheduleTime converts a wall-clock date and time in an IANA
// timezone into the UTC instant the campaign should dispatch at.
func resolveScheduleTime(date, clock, timezone string) (time.Time, error) {
	if date == "" || clock == "" || timezone == "" {
		return time.Time{}, errors.New(constants.ErrMsgInvalidSchedule)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}

	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q %q: %w", date, clock, err)
	}

	return at.UTC(), nil
}
