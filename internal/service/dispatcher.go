package service

import (
	"context"
	"errors"
	"sync"

	"github.com/0niran/rhb-send-backend/internal/config"
	"github.com/0niran/rhb-send-backend/internal/metrics"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"go.uber.org/zap"
)

// DispatchService sends a campaign's messages in paced batches. Within a
// batch every recipient is sent concurrently and failures are isolated: one
// recipient failing never aborts its batch or the campaign.
type DispatchService interface {
	DispatchCampaign(ctx context.Context, cmd DispatchCampaignCommand) error
	SendBatch(ctx context.Context, campaign *model.Campaign, recipients []model.Recipient) (DispatchResult, error)
}

type dispatcher struct {
	campaignRepo  repository.CampaignRepository
	recipientRepo repository.RecipientRepository
	logRepo       repository.MessageLogRepository
	provider      ProviderService
	pacer         Pacer
	batchSize     int
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

func NewDispatchService(campaignRepo repository.CampaignRepository, recipientRepo repository.RecipientRepository,
	logRepo repository.MessageLogRepository, provider ProviderService, pacer Pacer, cfg *config.Config,
	m *metrics.Metrics, logger *zap.Logger) DispatchService {
	batchSize := cfg.Dispatch.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}

	return &dispatcher{
		campaignRepo:  campaignRepo,
		recipientRepo: recipientRepo,
		logRepo:       logRepo,
		provider:      provider,
		pacer:         pacer,
		batchSize:     batchSize,
		metrics:       m,
		logger:        logger,
	}
}

func (d *dispatcher) DispatchCampaign(ctx context.Context, cmd DispatchCampaignCommand) error {
	campaign, err := d.campaignRepo.GetByCampaignID(cmd.CampaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			d.logger.Warn("Dispatch command for unknown campaign, dropping",
				zap.String("campaignID", cmd.CampaignID))
			return nil
		}

		d.logger.Error("Failed to load campaign for dispatch",
			zap.String("campaignID", cmd.CampaignID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	if campaign.Status.Terminal() {
		d.logger.Info("Campaign already processed, dropping dispatch command",
			zap.String("campaignID", cmd.CampaignID),
			zap.String("status", string(campaign.Status)))
		return nil
	}

	if err := d.campaignRepo.UpdateStatus(ctx, cmd.CampaignID, model.CampaignStatusSending, nil); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			d.logger.Info("Campaign not transitionable to sending, possibly processed by another consumer",
				zap.String("campaignID", cmd.CampaignID))
			return nil
		}

		d.logger.Error("Failed to update campaign to sending",
			zap.String("campaignID", cmd.CampaignID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	recipients, err := d.recipientRepo.ListPendingByCampaign(cmd.CampaignID)
	if err != nil {
		d.logger.Error("Failed to load pending recipients",
			zap.String("campaignID", cmd.CampaignID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	result, err := d.SendBatch(ctx, campaign, recipients)
	if err != nil {
		d.logger.Error("Campaign dispatch aborted",
			zap.String("campaignID", cmd.CampaignID),
			zap.Int("sent", result.SentCount),
			zap.Error(err))

		if updateErr := d.campaignRepo.UpdateStatus(ctx, cmd.CampaignID, model.CampaignStatusFailed, nil); updateErr != nil {
			d.logger.Error("Failed to mark campaign as failed",
				zap.String("campaignID", cmd.CampaignID),
				zap.Error(updateErr))
		}

		return mq.Temporary(err)
	}

	sentCount := campaign.SentCount + result.SentCount
	if err := d.campaignRepo.UpdateStatus(ctx, cmd.CampaignID, model.CampaignStatusSent, &sentCount); err != nil {
		d.logger.Error("Failed to mark campaign as sent",
			zap.String("campaignID", cmd.CampaignID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	d.logger.Info("Campaign dispatch complete",
		zap.String("campaignID", cmd.CampaignID),
		zap.Int("sent", result.SentCount),
		zap.Int("failed", len(result.Failures)),
		zap.Int("recipients", len(recipients)))

	return nil
}

func (d *dispatcher) SendBatch(ctx context.Context, campaign *model.Campaign, recipients []model.Recipient) (DispatchResult, error) {
	batches := chunkRecipients(recipients, d.batchSize)

	var mu sync.Mutex
	var result DispatchResult

	for i, batch := range batches {
		var wg sync.WaitGroup

		for _, recipient := range batch {
			wg.Add(1)
			go func(rec model.Recipient) {
				defer wg.Done()

				content := Personalize(campaign.MessageContent, rec.FirstName, rec.LastName)

				response, err := d.provider.SendWithRetry(ctx, campaign.SenderID, rec.PhoneNumber, content)
				if err != nil {
					d.logger.Warn("Send failed for recipient",
						zap.String("campaignID", campaign.CampaignID),
						zap.String("to", rec.PhoneNumber),
						zap.Error(err))

					d.recordAttempt(ctx, campaign.CampaignID, rec.PhoneNumber, content, nil, model.RecipientStatusFailed)
					d.metrics.RecordMessageFailed()

					mu.Lock()
					result.Failures = append(result.Failures, SendFailure{PhoneNumber: rec.PhoneNumber, Error: err.Error()})
					mu.Unlock()
					return
				}

				if err := d.recordAttempt(ctx, campaign.CampaignID, rec.PhoneNumber, content,
					&response.MessageID, model.RecipientStatusSent); err != nil {
					mu.Lock()
					result.Failures = append(result.Failures, SendFailure{PhoneNumber: rec.PhoneNumber, Error: err.Error()})
					mu.Unlock()
					return
				}

				d.metrics.RecordMessageSent()

				mu.Lock()
				result.SentCount++
				mu.Unlock()
			}(recipient)
		}

		wg.Wait()

		if i < len(batches)-1 {
			if err := d.pacer.Pause(ctx); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}

// recordAttempt writes the audit log entry for one send attempt and updates
// the recipient's message status. Store failures here count against the
// recipient, not the campaign.
func (d *dispatcher) recordAttempt(ctx context.Context, campaignID, phone, content string,
	providerMsgID *string, status model.RecipientStatus) error {
	logStatus := model.MessageLogStatusSent
	if status == model.RecipientStatusFailed {
		logStatus = model.MessageLogStatusFailed
	}

	entry := &model.MessageLog{
		CampaignID:    &campaignID,
		PhoneNumber:   phone,
		Direction:     model.DirectionOutbound,
		Content:       content,
		ProviderMsgID: providerMsgID,
		Status:        &logStatus,
	}

	if err := d.logRepo.Create(ctx, entry); err != nil {
		d.logger.Error("Failed to log outbound message",
			zap.String("campaignID", campaignID),
			zap.String("to", phone),
			zap.Error(err))
		return err
	}

	if err := d.recipientRepo.UpdateMessageStatus(ctx, campaignID, phone, status); err != nil {
		d.logger.Error("Failed to update recipient status",
			zap.String("campaignID", campaignID),
			zap.String("to", phone),
			zap.Error(err))
		return err
	}

	return nil
}

func chunkRecipients(recipients []model.Recipient, size int) [][]model.Recipient {
	if len(recipients) == 0 {
		return nil
	}

	batches := make([][]model.Recipient, 0, (len(recipients)+size-1)/size)
	for start := 0; start < len(recipients); start += size {
		end := start + size
		if end > len(recipients) {
			end = len(recipients)
		}
		batches = append(batches, recipients[start:end])
	}

	return batches
}
