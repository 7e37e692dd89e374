package mocks

import (
	"context"
	"time"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type ScheduleRepository struct {
	mock.Mock
}

func (s *ScheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	args := s.Called(ctx, schedule)
	return args.Error(0)
}

func (s *ScheduleRepository) List() ([]model.Schedule, error) {
	args := s.Called()
	return args.Get(0).([]model.Schedule), args.Error(1)
}

func (s *ScheduleRepository) FindDue(now time.Time, limit int) ([]model.Schedule, error) {
	args := s.Called(now, limit)
	return args.Get(0).([]model.Schedule), args.Error(1)
}

func (s *ScheduleRepository) MarkSent(ctx context.Context, scheduleID string, sentAt time.Time) error {
	args := s.Called(ctx, scheduleID, sentAt)
	return args.Error(0)
}

func (s *ScheduleRepository) UpdateStatus(ctx context.Context, scheduleID string, status model.ScheduleStatus) error {
	args := s.Called(ctx, scheduleID, status)
	return args.Error(0)
}
