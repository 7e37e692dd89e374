package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"go.uber.org/zap"
)

const (
	KeywordYes     = "YES"
	KeywordNo      = "NO"
	KeywordInvalid = "INVALID"
)

// ClassifyKeyword maps a raw inbound body onto one of the three response
// classes. Matching is a case-insensitive prefix check on the trimmed body,
// so "YES please" classifies as YES and "nope" classifies as NO.
func ClassifyKeyword(body string) string {
	trimmed := strings.ToLower(strings.TrimSpace(body))

	switch {
	case strings.HasPrefix(trimmed, "yes"):
		return KeywordYes
	case strings.HasPrefix(trimmed, "no"):
		return KeywordNo
	default:
		return KeywordInvalid
	}
}

// CorrelatorService ties an inbound message back to the two-way campaign it
// answers and produces the automated response to send back.
type CorrelatorService interface {
	Correlate(ctx context.Context, cmd InboundMessageCommand) (CorrelationResult, error)
}

type correlator struct {
	campaignRepo  repository.CampaignRepository
	recipientRepo repository.RecipientRepository
	logRepo       repository.MessageLogRepository
	logger        *zap.Logger
}

func NewCorrelatorService(campaignRepo repository.CampaignRepository, recipientRepo repository.RecipientRepository,
	logRepo repository.MessageLogRepository, logger *zap.Logger) CorrelatorService {
	return &correlator{
		campaignRepo:  campaignRepo,
		recipientRepo: recipientRepo,
		logRepo:       logRepo,
		logger:        logger,
	}
}

func (c *correlator) Correlate(ctx context.Context, cmd InboundMessageCommand) (CorrelationResult, error) {
	match, err := c.campaignRepo.FindMostRecentTwoWayMatch(cmd.PhoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			c.logger.Info("Inbound message without matching campaign",
				zap.String("from", cmd.PhoneNumber))
			return CorrelationResult{Reason: "no active two-way campaign found for this number"}, nil
		}

		c.logger.Error("Failed to correlate inbound message",
			zap.String("from", cmd.PhoneNumber),
			zap.Error(err))
		return CorrelationResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	keyword := ClassifyKeyword(cmd.Body)

	var template *string
	switch keyword {
	case KeywordYes:
		template = match.Campaign.YesResponse
	case KeywordNo:
		template = match.Campaign.NoResponse
	default:
		template = match.Campaign.InvalidResponse
	}

	responseMessage := ""
	if template != nil {
		responseMessage = Personalize(*template, match.Recipient.FirstName, match.Recipient.LastName)
	}

	entry := &model.MessageLog{
		CampaignID:      &match.Campaign.CampaignID,
		PhoneNumber:     cmd.PhoneNumber,
		Direction:       model.DirectionInbound,
		Content:         cmd.Body,
		ResponseKeyword: &keyword,
	}
	if err := c.logRepo.Create(ctx, entry); err != nil {
		c.logger.Error("Failed to log inbound message",
			zap.String("campaignID", match.Campaign.CampaignID),
			zap.String("from", cmd.PhoneNumber),
			zap.Error(err))
		return CorrelationResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	if err := c.recipientRepo.UpdateResponse(ctx, match.Campaign.CampaignID, cmd.PhoneNumber,
		keyword, time.Now().UTC()); err != nil {
		c.logger.Error("Failed to record recipient response",
			zap.String("campaignID", match.Campaign.CampaignID),
			zap.String("from", cmd.PhoneNumber),
			zap.Error(err))
		return CorrelationResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	c.logger.Info("Inbound message correlated",
		zap.String("campaignID", match.Campaign.CampaignID),
		zap.String("from", cmd.PhoneNumber),
		zap.String("keyword", keyword))

	return CorrelationResult{
		Handled:         true,
		CampaignID:      match.Campaign.CampaignID,
		SenderID:        match.Campaign.SenderID,
		ResponseKeyword: keyword,
		ResponseMessage: responseMessage,
	}, nil
}
