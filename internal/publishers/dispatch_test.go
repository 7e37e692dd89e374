package publishers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/0niran/rhb-send-backend/internal/mocks"
	"github.com/0niran/rhb-send-backend/internal/publishers"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestDispatchPublisher_Publish(t *testing.T) {
	logger := zap.NewNop()

	t.Run("publishes every due campaign", func(t *testing.T) {
		scheduleService := &mocks.ScheduleService{}
		publisher := &mocks.Publisher{}

		pub := publishers.NewDispatchPublisher(scheduleService, publisher, 50, logger)

		scheduleService.On("FindCampaignsToDispatch", mock.AnythingOfType("time.Time"), 50).
			Return([]service.DispatchJob{
				{ScheduleID: "sched-1", CampaignID: "camp-1"},
				{ScheduleID: "sched-2", CampaignID: "camp-2"},
			}, nil)
		scheduleService.On("MarkScheduleDispatched", mock.Anything, "sched-1").Return(nil)
		scheduleService.On("MarkScheduleDispatched", mock.Anything, "sched-2").Return(nil)
		publisher.On("Publish", mock.Anything, "", "campaign.dispatch", mock.Anything).Return(nil)

		err := pub.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNumberOfCalls(t, "Publish", 2)
		scheduleService.AssertExpectations(t)
	})

	t.Run("skips schedule that lost the pending mark", func(t *testing.T) {
		scheduleService := &mocks.ScheduleService{}
		publisher := &mocks.Publisher{}

		pub := publishers.NewDispatchPublisher(scheduleService, publisher, 50, logger)

		scheduleService.On("FindCampaignsToDispatch", mock.AnythingOfType("time.Time"), 50).
			Return([]service.DispatchJob{{ScheduleID: "sched-1", CampaignID: "camp-1"}}, nil)
		scheduleService.On("MarkScheduleDispatched", mock.Anything, "sched-1").
			Return(repository.ErrNoRowsAffected)

		err := pub.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("continues after a publish failure", func(t *testing.T) {
		scheduleService := &mocks.ScheduleService{}
		publisher := &mocks.Publisher{}

		pub := publishers.NewDispatchPublisher(scheduleService, publisher, 50, logger)

		scheduleService.On("FindCampaignsToDispatch", mock.AnythingOfType("time.Time"), 50).
			Return([]service.DispatchJob{
				{ScheduleID: "sched-1", CampaignID: "camp-1"},
				{ScheduleID: "sched-2", CampaignID: "camp-2"},
			}, nil)
		scheduleService.On("MarkScheduleDispatched", mock.Anything, mock.AnythingOfType("string")).Return(nil)
		publisher.On("Publish", mock.Anything, "", "campaign.dispatch", mock.Anything).
			Return(errors.New("broker down")).Once()
		publisher.On("Publish", mock.Anything, "", "campaign.dispatch", mock.Anything).Return(nil)

		err := pub.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNumberOfCalls(t, "Publish", 2)
	})

	t.Run("nothing due publishes nothing", func(t *testing.T) {
		scheduleService := &mocks.ScheduleService{}
		publisher := &mocks.Publisher{}

		pub := publishers.NewDispatchPublisher(scheduleService, publisher, 50, logger)

		scheduleService.On("FindCampaignsToDispatch", mock.AnythingOfType("time.Time"), 50).
			Return([]service.DispatchJob{}, nil)

		err := pub.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
