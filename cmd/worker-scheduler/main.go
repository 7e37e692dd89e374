package main

import (
	"context"
	"time"

	"github.com/0niran/rhb-send-backend/internal/config"
	"github.com/0niran/rhb-send-backend/internal/publishers"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"github.com/0niran/rhb-send-backend/pkg/mysql"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,

			repository.NewScheduleRepository,

			service.NewScheduleService,

			NewDispatchPublisher,
		),
		fx.Invoke(runSchedulerPublisher),
	).Run()
}

func runSchedulerPublisher(cfg *config.Config, publisher publishers.DispatchPublisher, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology("campaign.dispatch"); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				ticker := time.NewTicker(cfg.Scheduler.PollInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := publisher.Publish(appCtx); err != nil {
							logger.Error("failed to publish due campaigns", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("publisher context cancelled")
						return
					}
				}
			}()

			logger.Info("scheduler publisher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping scheduler publisher")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewDispatchPublisher(svc service.ScheduleService, publisher mq.Publisher, cfg *config.Config,
	logger *zap.Logger) publishers.DispatchPublisher {
	return publishers.NewDispatchPublisher(svc, publisher, cfg.Scheduler.BatchLimit, logger)
}
