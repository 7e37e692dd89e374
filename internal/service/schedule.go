package service

import (
	"context"
	"errors"
	"time"

	"github.com/0niran/rhb-send-backend/internal/constants"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"go.uber.org/zap"
)

// ScheduleService owns deferred dispatch: it surfaces due schedules to the
// scheduler worker and manages schedule lifecycle for the API.
type ScheduleService interface {
	FindCampaignsToDispatch(now time.Time, limit int) ([]DispatchJob, error)
	MarkScheduleDispatched(ctx context.Context, scheduleID string) error
	ListSchedules() ([]model.Schedule, error)
	CancelSchedule(ctx context.Context, scheduleID string) error
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	logger       *zap.Logger
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, logger *zap.Logger) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, logger: logger}
}

func (s *scheduleService) FindCampaignsToDispatch(now time.Time, limit int) ([]DispatchJob, error) {
	schedules, err := s.scheduleRepo.FindDue(now, limit)
	if err != nil {
		return nil, err
	}

	jobs := make([]DispatchJob, 0, len(schedules))
	for _, schedule := range schedules {
		jobs = append(jobs, DispatchJob{ScheduleID: schedule.ScheduleID, CampaignID: schedule.CampaignID})
	}

	return jobs, nil
}

func (s *scheduleService) MarkScheduleDispatched(ctx context.Context, scheduleID string) error {
	return s.scheduleRepo.MarkSent(ctx, scheduleID, time.Now().UTC())
}

func (s *scheduleService) ListSchedules() ([]model.Schedule, error) {
	schedules, err := s.scheduleRepo.List()
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return schedules, nil
}

func (s *scheduleService) CancelSchedule(ctx context.Context, scheduleID string) error {
	err := s.scheduleRepo.UpdateStatus(ctx, scheduleID, model.ScheduleStatusCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return NewServiceError(constants.ErrCodeScheduleNotFound, err)
		}

		return NewServiceError(ErrCodeDatabase, err)
	}

	s.logger.Info("Schedule cancelled", zap.String("scheduleID", scheduleID))
	return nil
}
