package mocks

import (
	"context"
	"time"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/stretchr/testify/mock"
)

type ScheduleService struct {
	mock.Mock
}

func (s *ScheduleService) FindCampaignsToDispatch(now time.Time, limit int) ([]service.DispatchJob, error) {
	args := s.Called(now, limit)
	return args.Get(0).([]service.DispatchJob), args.Error(1)
}

func (s *ScheduleService) MarkScheduleDispatched(ctx context.Context, scheduleID string) error {
	args := s.Called(ctx, scheduleID)
	return args.Error(0)
}

func (s *ScheduleService) ListSchedules() ([]model.Schedule, error) {
	args := s.Called()
	return args.Get(0).([]model.Schedule), args.Error(1)
}

func (s *ScheduleService) CancelSchedule(ctx context.Context, scheduleID string) error {
	args := s.Called(ctx, scheduleID)
	return args.Error(0)
}
