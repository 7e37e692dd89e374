package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/0niran/rhb-send-backend/internal/config"
	"github.com/0niran/rhb-send-backend/internal/metrics"
	"github.com/0niran/rhb-send-backend/internal/mocks"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newDispatchService(campaignRepo *mocks.CampaignRepository, recipientRepo *mocks.RecipientRepository,
	logRepo *mocks.MessageLogRepository, provider *mocks.ProviderService, pacer *mocks.Pacer,
	batchSize int) service.DispatchService {
	cfg := &config.Config{Dispatch: config.Dispatch{BatchSize: batchSize}}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return service.NewDispatchService(campaignRepo, recipientRepo, logRepo, provider, pacer, cfg, m, zap.NewNop())
}

func makeRecipients(campaignID string, n int) []model.Recipient {
	recipients := make([]model.Recipient, 0, n)
	for i := 0; i < n; i++ {
		recipients = append(recipients, model.Recipient{
			CampaignID:    campaignID,
			PhoneNumber:   fmt.Sprintf("+1555000%04d", i),
			FirstName:     "Ann",
			LastName:      "Lee",
			MessageStatus: model.RecipientStatusPending,
		})
	}
	return recipients
}

func TestDispatch_DispatchCampaign(t *testing.T) {
	cmd := service.DispatchCampaignCommand{CampaignID: "camp-1"}

	campaign := &model.Campaign{
		CampaignID:     "camp-1",
		Name:           "Summer Sale",
		MessageContent: "Hi {firstName}, sale is on",
		SenderID:       "+15559990000",
		ResponseMode:   model.ResponseModeOneWay,
		Status:         model.CampaignStatusPending,
	}

	t.Run("sends all recipients in paced batches", func(t *testing.T) {
		campaignRepo := &mocks.CampaignRepository{}
		recipientRepo := &mocks.RecipientRepository{}
		logRepo := &mocks.MessageLogRepository{}
		provider := &mocks.ProviderService{}
		pacer := &mocks.Pacer{}

		svc := newDispatchService(campaignRepo, recipientRepo, logRepo, provider, pacer, 10)

		recipients := makeRecipients("camp-1", 25)

		campaignRepo.On("GetByCampaignID", "camp-1").Return(campaign, nil)
		campaignRepo.On("UpdateStatus", mock.Anything, "camp-1", model.CampaignStatusSending, (*int)(nil)).
			Return(nil)
		recipientRepo.On("ListPendingByCampaign", "camp-1").Return(recipients, nil)

		provider.On("SendWithRetry", mock.Anything, "+15559990000", mock.AnythingOfType("string"), "Hi Ann, sale is on").
			Return(smsprovider.Response{MessageID: "prov-1", Status: "sent"}, nil)

		logRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *model.MessageLog) bool {
			return entry.Direction == model.DirectionOutbound &&
				entry.Status != nil && *entry.Status == model.MessageLogStatusSent
		})).Return(nil)
		recipientRepo.On("UpdateMessageStatus", mock.Anything, "camp-1", mock.AnythingOfType("string"),
			model.RecipientStatusSent).Return(nil)

		pacer.On("Pause", mock.Anything).Return(nil)

		campaignRepo.On("UpdateStatus", mock.Anything, "camp-1", model.CampaignStatusSent,
			mock.MatchedBy(func(count *int) bool { return count != nil && *count == 25 })).Return(nil)

		err := svc.DispatchCampaign(context.Background(), cmd)

		assert.NoError(t, err)
		provider.AssertNumberOfCalls(t, "SendWithRetry", 25)
		pacer.AssertNumberOfCalls(t, "Pause", 2)
		campaignRepo.AssertExpectations(t)
	})

	t.Run("isolates per recipient failures", func(t *testing.T) {
		campaignRepo := &mocks.CampaignRepository{}
		recipientRepo := &mocks.RecipientRepository{}
		logRepo := &mocks.MessageLogRepository{}
		provider := &mocks.ProviderService{}
		pacer := &mocks.Pacer{}

		svc := newDispatchService(campaignRepo, recipientRepo, logRepo, provider, pacer, 10)

		recipients := makeRecipients("camp-1", 10)
		failing := map[string]bool{
			recipients[2].PhoneNumber: true,
			recipients[5].PhoneNumber: true,
			recipients[8].PhoneNumber: true,
		}

		campaignRepo.On("GetByCampaignID", "camp-1").Return(campaign, nil)
		campaignRepo.On("UpdateStatus", mock.Anything, "camp-1", model.CampaignStatusSending, (*int)(nil)).
			Return(nil)
		recipientRepo.On("ListPendingByCampaign", "camp-1").Return(recipients, nil)

		for phone := range failing {
			provider.On("SendWithRetry", mock.Anything, "+15559990000", phone, mock.AnythingOfType("string")).
				Return(smsprovider.Response{}, errors.New(smsprovider.ErrorCodeTimeout))
		}
		provider.On("SendWithRetry", mock.Anything, "+15559990000", mock.AnythingOfType("string"),
			mock.AnythingOfType("string")).
			Return(smsprovider.Response{MessageID: "prov-ok", Status: "sent"}, nil)

		logRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MessageLog")).Return(nil)
		recipientRepo.On("UpdateMessageStatus", mock.Anything, "camp-1", mock.AnythingOfType("string"),
			mock.MatchedBy(func(status model.RecipientStatus) bool {
				return status == model.RecipientStatusSent || status == model.RecipientStatusFailed
			})).Return(nil)

		campaignRepo.On("UpdateStatus", mock.Anything, "camp-1", model.CampaignStatusSent,
			mock.MatchedBy(func(count *int) bool { return count != nil && *count == 7 })).Return(nil)

		err := svc.DispatchCampaign(context.Background(), cmd)

		assert.NoError(t, err)
		provider.AssertNumberOfCalls(t, "SendWithRetry", 10)
		campaignRepo.AssertExpectations(t)
	})

	t.Run("drops command for unknown campaign", func(t *testing.T) {
		campaignRepo := &mocks.CampaignRepository{}

		svc := newDispatchService(campaignRepo, &mocks.RecipientRepository{}, &mocks.MessageLogRepository{},
			&mocks.ProviderService{}, &mocks.Pacer{}, 10)

		campaignRepo.On("GetByCampaignID", "camp-1").
			Return((*model.Campaign)(nil), repository.ErrCampaignNotFound)

		err := svc.DispatchCampaign(context.Background(), cmd)

		assert.NoError(t, err)
		campaignRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("drops command for already processed campaign", func(t *testing.T) {
		campaignRepo := &mocks.CampaignRepository{}
		provider := &mocks.ProviderService{}

		svc := newDispatchService(campaignRepo, &mocks.RecipientRepository{}, &mocks.MessageLogRepository{},
			provider, &mocks.Pacer{}, 10)

		processed := *campaign
		processed.Status = model.CampaignStatusSent

		campaignRepo.On("GetByCampaignID", "camp-1").Return(&processed, nil)

		err := svc.DispatchCampaign(context.Background(), cmd)

		assert.NoError(t, err)
		provider.AssertNotCalled(t, "SendWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("drops command when another consumer won the transition", func(t *testing.T) {
		campaignRepo := &mocks.CampaignRepository{}
		recipientRepo := &mocks.RecipientRepository{}

		svc := newDispatchService(campaignRepo, recipientRepo, &mocks.MessageLogRepository{},
			&mocks.ProviderService{}, &mocks.Pacer{}, 10)

		campaignRepo.On("GetByCampaignID", "camp-1").Return(campaign, nil)
		campaignRepo.On("UpdateStatus", mock.Anything, "camp-1", model.CampaignStatusSending, (*int)(nil)).
			Return(repository.ErrNoRowsAffected)

		err := svc.DispatchCampaign(context.Background(), cmd)

		assert.NoError(t, err)
		recipientRepo.AssertNotCalled(t, "ListPendingByCampaign", mock.Anything)
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		campaignRepo := &mocks.CampaignRepository{}
		recipientRepo := &mocks.RecipientRepository{}

		svc := newDispatchService(campaignRepo, recipientRepo, &mocks.MessageLogRepository{},
			&mocks.ProviderService{}, &mocks.Pacer{}, 10)

		campaignRepo.On("GetByCampaignID", "camp-1").Return(campaign, nil)
		campaignRepo.On("UpdateStatus", mock.Anything, "camp-1", model.CampaignStatusSending, (*int)(nil)).
			Return(nil)
		recipientRepo.On("ListPendingByCampaign", "camp-1").Return([]model.Recipient(nil), errors.New("db down"))

		err := svc.DispatchCampaign(context.Background(), cmd)

		assert.Error(t, err)

		var tempErr mq.TempError
		assert.ErrorAs(t, err, &tempErr)
	})
}

func TestDispatch_SendBatch(t *testing.T) {
	campaign := &model.Campaign{
		CampaignID:     "camp-2",
		MessageContent: "Hello {fullName}",
		SenderID:       "+15559990000",
	}

	t.Run("does not pause after the final batch", func(t *testing.T) {
		recipientRepo := &mocks.RecipientRepository{}
		logRepo := &mocks.MessageLogRepository{}
		provider := &mocks.ProviderService{}
		pacer := &mocks.Pacer{}

		svc := newDispatchService(&mocks.CampaignRepository{}, recipientRepo, logRepo, provider, pacer, 10)

		recipients := makeRecipients("camp-2", 10)

		provider.On("SendWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(smsprovider.Response{MessageID: "prov-1"}, nil)
		logRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MessageLog")).Return(nil)
		recipientRepo.On("UpdateMessageStatus", mock.Anything, "camp-2", mock.AnythingOfType("string"),
			model.RecipientStatusSent).Return(nil)

		result, err := svc.SendBatch(context.Background(), campaign, recipients)

		assert.NoError(t, err)
		assert.Equal(t, 10, result.SentCount)
		assert.Empty(t, result.Failures)
		pacer.AssertNotCalled(t, "Pause", mock.Anything)
	})

	t.Run("counts store failure after successful send against the recipient", func(t *testing.T) {
		recipientRepo := &mocks.RecipientRepository{}
		logRepo := &mocks.MessageLogRepository{}
		provider := &mocks.ProviderService{}

		svc := newDispatchService(&mocks.CampaignRepository{}, recipientRepo, logRepo, provider,
			&mocks.Pacer{}, 10)

		recipients := makeRecipients("camp-2", 1)

		provider.On("SendWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(smsprovider.Response{MessageID: "prov-1"}, nil)
		logRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MessageLog")).
			Return(errors.New("db down"))

		result, err := svc.SendBatch(context.Background(), campaign, recipients)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.SentCount)
		assert.Len(t, result.Failures, 1)
		assert.Equal(t, recipients[0].PhoneNumber, result.Failures[0].PhoneNumber)
	})

	t.Run("empty recipient list sends nothing", func(t *testing.T) {
		provider := &mocks.ProviderService{}
		pacer := &mocks.Pacer{}

		svc := newDispatchService(&mocks.CampaignRepository{}, &mocks.RecipientRepository{},
			&mocks.MessageLogRepository{}, provider, pacer, 10)

		result, err := svc.SendBatch(context.Background(), campaign, nil)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.SentCount)
		provider.AssertNotCalled(t, "SendWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		pacer.AssertNotCalled(t, "Pause", mock.Anything)
	})
}
