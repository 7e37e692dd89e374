package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/0niran/rhb-send-backend/internal/metrics"
	"github.com/0niran/rhb-send-backend/internal/mocks"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestInboundWorkflow_ProcessInbound(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.InboundMessageCommand{
		PhoneNumber:       "+15551234567",
		Body:              "YES",
		ProviderMessageID: "SM123",
	}

	handled := service.CorrelationResult{
		Handled:         true,
		CampaignID:      "camp-1",
		SenderID:        "+15559990000",
		ResponseKeyword: service.KeywordYes,
		ResponseMessage: "Thanks Ann!",
	}

	newWorkflow := func(correlator *mocks.CorrelatorService, provider *mocks.ProviderService,
		logRepo *mocks.MessageLogRepository) service.InboundWorkflowService {
		m := metrics.NewMetrics(prometheus.NewRegistry())
		return service.NewInboundWorkflowService(correlator, provider, logRepo, m, logger)
	}

	t.Run("sends and logs the automated response", func(t *testing.T) {
		correlator := &mocks.CorrelatorService{}
		provider := &mocks.ProviderService{}
		logRepo := &mocks.MessageLogRepository{}

		svc := newWorkflow(correlator, provider, logRepo)

		correlator.On("Correlate", mock.Anything, cmd).Return(handled, nil)
		provider.On("SendWithRetry", mock.Anything, "+15559990000", "+15551234567", "Thanks Ann!").
			Return(smsprovider.Response{MessageID: "prov-9"}, nil)

		logRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *model.MessageLog) bool {
			return entry.Direction == model.DirectionOutbound &&
				entry.Content == "Thanks Ann!" &&
				entry.ProviderMsgID != nil && *entry.ProviderMsgID == "prov-9" &&
				entry.Status != nil && *entry.Status == model.MessageLogStatusSent
		})).Return(nil)

		result, err := svc.ProcessInbound(context.Background(), cmd)

		assert.NoError(t, err)
		assert.True(t, result.Handled)
		provider.AssertExpectations(t)
		logRepo.AssertExpectations(t)
	})

	t.Run("response send failure does not fail the webhook", func(t *testing.T) {
		correlator := &mocks.CorrelatorService{}
		provider := &mocks.ProviderService{}
		logRepo := &mocks.MessageLogRepository{}

		svc := newWorkflow(correlator, provider, logRepo)

		correlator.On("Correlate", mock.Anything, cmd).Return(handled, nil)
		provider.On("SendWithRetry", mock.Anything, "+15559990000", "+15551234567", "Thanks Ann!").
			Return(smsprovider.Response{}, errors.New(smsprovider.ErrorCodeTimeout))

		logRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *model.MessageLog) bool {
			return entry.Status != nil && *entry.Status == model.MessageLogStatusFailed &&
				entry.ProviderMsgID == nil
		})).Return(nil)

		result, err := svc.ProcessInbound(context.Background(), cmd)

		assert.NoError(t, err)
		assert.True(t, result.Handled)
		logRepo.AssertExpectations(t)
	})

	t.Run("unhandled message sends nothing", func(t *testing.T) {
		correlator := &mocks.CorrelatorService{}
		provider := &mocks.ProviderService{}

		svc := newWorkflow(correlator, provider, &mocks.MessageLogRepository{})

		correlator.On("Correlate", mock.Anything, cmd).
			Return(service.CorrelationResult{Reason: "no active two-way campaign found for this number"}, nil)

		result, err := svc.ProcessInbound(context.Background(), cmd)

		assert.NoError(t, err)
		assert.False(t, result.Handled)
		provider.AssertNotCalled(t, "SendWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("handled without response template sends nothing", func(t *testing.T) {
		correlator := &mocks.CorrelatorService{}
		provider := &mocks.ProviderService{}

		svc := newWorkflow(correlator, provider, &mocks.MessageLogRepository{})

		silent := handled
		silent.ResponseMessage = ""

		correlator.On("Correlate", mock.Anything, cmd).Return(silent, nil)

		result, err := svc.ProcessInbound(context.Background(), cmd)

		assert.NoError(t, err)
		assert.True(t, result.Handled)
		provider.AssertNotCalled(t, "SendWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("correlation error propagates", func(t *testing.T) {
		correlator := &mocks.CorrelatorService{}

		svc := newWorkflow(correlator, &mocks.ProviderService{}, &mocks.MessageLogRepository{})

		correlator.On("Correlate", mock.Anything, cmd).
			Return(service.CorrelationResult{}, service.NewServiceError(service.ErrCodeDatabase, errors.New("db down")))

		_, err := svc.ProcessInbound(context.Background(), cmd)

		assert.Error(t, err)
	})
}
