package main

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/config"
	"github.com/0niran/rhb-send-backend/internal/consumers"
	"github.com/0niran/rhb-send-backend/internal/metrics"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/httpclient"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"github.com/0niran/rhb-send-backend/pkg/mysql"
	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/prometheus/client_golang/prometheus"
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
			NewMQConsumer,
			NewMetrics,
			NewPacer,

			repository.NewCampaignRepository,
			repository.NewRecipientRepository,
			repository.NewMessageLogRepository,

			NewSMSProvider,
			service.NewProviderService,
			service.NewDispatchService,

			consumers.NewDispatchConsumer,
		),
		fx.Invoke(runDispatchConsumer),
	).Run()
}

func runDispatchConsumer(cfg *config.Config, dispatchConsumer consumers.DispatchConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology("campaign.dispatch"); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := dispatchConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("dispatch consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping dispatch consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewSMSProvider(cfg *config.Config) smsprovider.Provider {
	client := httpclient.NewHTTPClient(cfg.Provider.Timeout)
	return smsprovider.NewSMSProvider(cfg.Provider, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.DefaultRegisterer)
}

func NewPacer(cfg *config.Config) service.Pacer {
	return service.NewFixedDelayPacer(cfg.Dispatch.BatchDelay)
}
