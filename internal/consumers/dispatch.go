package consumers

import (
	"context"
	"encoding/json"

	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"go.uber.org/zap"
)

const dispatchQueue = "campaign.dispatch"

type DispatchConsumer interface {
	Consume(ctx context.Context) error
}

type dispatchConsumer struct {
	service  service.DispatchService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewDispatchConsumer(service service.DispatchService, consumer mq.Consumer, logger *zap.Logger) DispatchConsumer {
	return &dispatchConsumer{service: service, consumer: consumer, logger: logger}
}

func (d *dispatchConsumer) Consume(ctx context.Context) error {
	return d.consumer.Consume(ctx, 1, dispatchQueue, d.handleMessage)
}

func (d *dispatchConsumer) handleMessage(ctx context.Context, body []byte) error {
	d.logger.Info("received dispatch command", zap.ByteString("body", body))

	var cmd service.DispatchCampaignCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		d.logger.Warn("invalid dispatch command", zap.Error(err))
		return err
	}

	return d.service.DispatchCampaign(ctx, cmd)
}
