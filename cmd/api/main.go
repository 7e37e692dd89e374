package main

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/api"
	"github.com/0niran/rhb-send-backend/internal/api/middleware"
	v1 "github.com/0niran/rhb-send-backend/internal/api/v1"
	"github.com/0niran/rhb-send-backend/internal/config"
	"github.com/0niran/rhb-send-backend/internal/metrics"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/httpclient"
	"github.com/0niran/rhb-send-backend/pkg/mq"
	"github.com/0niran/rhb-send-backend/pkg/mysql"
	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
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
			NewFiberApp,
			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,
			NewMetrics,

			repository.NewCampaignRepository,
			repository.NewRecipientRepository,
			repository.NewMessageLogRepository,
			repository.NewScheduleRepository,
			repository.NewTemplateRepository,
			repository.NewTransactionManager,

			NewSMSProvider,
			service.NewProviderService,
			service.NewCorrelatorService,
			service.NewInboundWorkflowService,
			service.NewCampaignService,
			service.NewScheduleService,
			service.NewTemplateService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, cfg *config.Config,
	rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology("campaign.dispatch"); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}

			return rabbit.Close()
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
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

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.DefaultRegisterer)
}
