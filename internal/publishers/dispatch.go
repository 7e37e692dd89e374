package publishers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"go.uber.org/zap"
)

const dispatchQueue = "campaign.dispatch"

// DispatchPublisher moves due schedules onto the dispatch queue. Each
// schedule is marked sent before its command is published; a schedule that
// cannot be marked is skipped.
type DispatchPublisher interface {
	Publish(ctx context.Context) error
}

type dispatchPublisher struct {
	service    service.ScheduleService
	publisher  mq.Publisher
	batchLimit int
	logger     *zap.Logger
}

func NewDispatchPublisher(service service.ScheduleService, publisher mq.Publisher, batchLimit int,
	logger *zap.Logger) DispatchPublisher {
	if batchLimit <= 0 {
		batchLimit = 50
	}

	return &dispatchPublisher{service: service, publisher: publisher, batchLimit: batchLimit, logger: logger}
}

func (d *dispatchPublisher) Publish(ctx context.Context) error {
	jobs, err := d.service.FindCampaignsToDispatch(time.Now().UTC(), d.batchLimit)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		return nil
	}

	d.logger.Info("Publishing due campaigns", zap.Int("count", len(jobs)))

	successCount := 0
	for _, job := range jobs {
		if err := d.service.MarkScheduleDispatched(ctx, job.ScheduleID); err != nil {
			d.logger.Warn("Schedule no longer pending, skipping",
				zap.String("scheduleID", job.ScheduleID),
				zap.Error(err))
			continue
		}

		body, _ := json.Marshal(service.DispatchCampaignCommand{CampaignID: job.CampaignID})
		if err := d.publisher.Publish(ctx, "", dispatchQueue, body); err != nil {
			d.logger.Error("Failed to publish dispatch command",
				zap.Error(err),
				zap.String("scheduleID", job.ScheduleID),
				zap.String("campaignID", job.CampaignID))
			continue
		}

		successCount++
	}

	if successCount > 0 {
		d.logger.Info("Successfully published due campaigns",
			zap.Int("published", successCount),
			zap.Int("total", len(jobs)))
	}

	return nil
}
