package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/0niran/rhb-send-backend/internal/constants"
	"github.com/0niran/rhb-send-backend/internal/mocks"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSchedule_FindCampaignsToDispatch(t *testing.T) {
	logger := zap.NewNop()
	now := time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC)

	t.Run("maps due schedules to dispatch jobs", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		svc := service.NewScheduleService(scheduleRepo, logger)

		scheduleRepo.On("FindDue", now, 50).Return([]model.Schedule{
			{ScheduleID: "sched-1", CampaignID: "camp-1"},
			{ScheduleID: "sched-2", CampaignID: "camp-2"},
		}, nil)

		jobs, err := svc.FindCampaignsToDispatch(now, 50)

		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.Equal(t, "sched-1", jobs[0].ScheduleID)
		assert.Equal(t, "camp-1", jobs[0].CampaignID)
	})

	t.Run("no due schedules yields empty list", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		svc := service.NewScheduleService(scheduleRepo, logger)

		scheduleRepo.On("FindDue", now, 50).Return([]model.Schedule{}, nil)

		jobs, err := svc.FindCampaignsToDispatch(now, 50)

		assert.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestSchedule_CancelSchedule(t *testing.T) {
	logger := zap.NewNop()

	t.Run("cancels a pending schedule", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		svc := service.NewScheduleService(scheduleRepo, logger)

		scheduleRepo.On("UpdateStatus", mock.Anything, "sched-1", model.ScheduleStatusCancelled).Return(nil)

		err := svc.CancelSchedule(context.Background(), "sched-1")

		assert.NoError(t, err)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("unknown schedule maps to not found", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		svc := service.NewScheduleService(scheduleRepo, logger)

		scheduleRepo.On("UpdateStatus", mock.Anything, "missing", model.ScheduleStatusCancelled).
			Return(repository.ErrScheduleNotFound)

		err := svc.CancelSchedule(context.Background(), "missing")

		var svcErr service.Error
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, constants.ErrCodeScheduleNotFound, svcErr.Code)
	})
}

func TestSchedule_MarkScheduleDispatched(t *testing.T) {
	t.Run("cancelled schedule loses the mark", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		svc := service.NewScheduleService(scheduleRepo, zap.NewNop())

		scheduleRepo.On("MarkSent", mock.Anything, "sched-1", mock.AnythingOfType("time.Time")).
			Return(repository.ErrNoRowsAffected)

		err := svc.MarkScheduleDispatched(context.Background(), "sched-1")

		assert.ErrorIs(t, err, repository.ErrNoRowsAffected)
	})
}

func TestSchedule_ListSchedules(t *testing.T) {
	t.Run("store failure surfaces as service error", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		svc := service.NewScheduleService(scheduleRepo, zap.NewNop())

		scheduleRepo.On("List").Return([]model.Schedule(nil), errors.New("db down"))

		_, err := svc.ListSchedules()

		var svcErr service.Error
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, service.ErrCodeDatabase, svcErr.Code)
	})
}
