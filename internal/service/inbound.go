package service

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/metrics"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"go.uber.org/zap"
)

// InboundWorkflowService runs the full reply flow: correlate the inbound
// message, then send and log the automated response when the campaign
// defines one. A response send failure is logged but never fails the
// webhook, the inbound side has already been recorded.
type InboundWorkflowService interface {
	ProcessInbound(ctx context.Context, cmd InboundMessageCommand) (CorrelationResult, error)
}

type inboundWorkflow struct {
	correlator CorrelatorService
	provider   ProviderService
	logRepo    repository.MessageLogRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewInboundWorkflowService(correlator CorrelatorService, provider ProviderService,
	logRepo repository.MessageLogRepository, m *metrics.Metrics, logger *zap.Logger) InboundWorkflowService {
	return &inboundWorkflow{
		correlator: correlator,
		provider:   provider,
		logRepo:    logRepo,
		metrics:    m,
		logger:     logger,
	}
}

func (w *inboundWorkflow) ProcessInbound(ctx context.Context, cmd InboundMessageCommand) (CorrelationResult, error) {
	result, err := w.correlator.Correlate(ctx, cmd)
	if err != nil {
		return CorrelationResult{}, err
	}

	if result.Handled {
		w.metrics.RecordInboundMessage(result.ResponseKeyword)
	}

	if !result.Handled || result.ResponseMessage == "" {
		return result, nil
	}

	response, err := w.provider.SendWithRetry(ctx, result.SenderID, cmd.PhoneNumber, result.ResponseMessage)
	if err != nil {
		w.logger.Error("Failed to send automated response",
			zap.String("campaignID", result.CampaignID),
			zap.String("to", cmd.PhoneNumber),
			zap.Error(err))

		w.logOutbound(ctx, result.CampaignID, cmd.PhoneNumber, result.ResponseMessage, nil, model.MessageLogStatusFailed)
		return result, nil
	}

	w.logOutbound(ctx, result.CampaignID, cmd.PhoneNumber, result.ResponseMessage,
		&response.MessageID, model.MessageLogStatusSent)
	w.metrics.RecordAutoResponseSent()

	w.logger.Info("Automated response sent",
		zap.String("campaignID", result.CampaignID),
		zap.String("to", cmd.PhoneNumber),
		zap.String("keyword", result.ResponseKeyword))

	return result, nil
}

func (w *inboundWorkflow) logOutbound(ctx context.Context, campaignID, phone, content string,
	providerMsgID *string, status string) {
	entry := &model.MessageLog{
		CampaignID:    &campaignID,
		PhoneNumber:   phone,
		Direction:     model.DirectionOutbound,
		Content:       content,
		ProviderMsgID: providerMsgID,
		Status:        &status,
	}

	if err := w.logRepo.Create(ctx, entry); err != nil {
		w.logger.Error("Failed to log automated response",
			zap.String("campaignID", campaignID),
			zap.String("to", phone),
			zap.Error(err))
	}
}
