package repository

import (
	"context"
	"errors"
	"time"

	"github.com/0niran/rhb-send-backend/internal/model"
	"gorm.io/gorm"
)

var ErrScheduleNotFound = errors.New("SCHEDULE_NOT_FOUND")

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	List() ([]model.Schedule, error)
	FindDue(now time.Time, limit int) ([]model.Schedule, error)
	MarkSent(ctx context.Context, scheduleID string, sentAt time.Time) error
	UpdateStatus(ctx context.Context, scheduleID string, status model.ScheduleStatus) error
}

type Schedule struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &Schedule{db: db}
}

func (s *Schedule) Create(ctx context.Context, schedule *model.Schedule) error {
	db := GetTx(ctx, s.db)
	return db.Create(schedule).Error
}

func (s *Schedule) List() ([]model.Schedule, error) {
	var schedules []model.Schedule

	err := s.db.Where("status = ?", model.ScheduleStatusPending).
		Order("scheduled_for ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

func (s *Schedule) FindDue(now time.Time, limit int) ([]model.Schedule, error) {
	var schedules []model.Schedule

	err := s.db.Where("status = ? AND scheduled_for <= ?", model.ScheduleStatusPending, now).
		Order("scheduled_for ASC").
		Limit(limit).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

// MarkSent flips a pending schedule to sent. Only pending rows qualify, so a
// schedule cancelled between polls is never dispatched.
func (s *Schedule) MarkSent(ctx context.Context, scheduleID string, sentAt time.Time) error {
	db := GetTx(ctx, s.db)
	result := db.Model(&model.Schedule{}).
		Where("schedule_id = ? AND status = ?", scheduleID, model.ScheduleStatusPending).
		Updates(map[string]interface{}{
			"status":  model.ScheduleStatusSent,
			"sent_at": sentAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (s *Schedule) UpdateStatus(ctx context.Context, scheduleID string, status model.ScheduleStatus) error {
	db := GetTx(ctx, s.db)
	result := db.Model(&model.Schedule{}).
		Where("schedule_id = ?", scheduleID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}
