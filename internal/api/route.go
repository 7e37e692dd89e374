package api

import (
	"github.com/0niran/rhb-send-backend/internal/api/v1"
	"github.com/0niran/rhb-send-backend/internal/metrics"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, logger *zap.Logger) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	app.Get("/ping", handler.Pong)
	app.Get("/health", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/v1/campaigns", handler.CreateCampaign)
	app.Get("/v1/campaigns", handler.ListCampaigns)
	app.Get("/v1/campaigns/stats", handler.Stats)
	app.Get("/v1/campaigns/:id", handler.GetCampaign)
	app.Get("/v1/campaigns/:id/messages", handler.ListCampaignMessages)

	app.Get("/v1/schedules", handler.ListSchedules)
	app.Delete("/v1/schedules/:id", handler.CancelSchedule)

	app.Post("/v1/templates", handler.CreateTemplate)
	app.Get("/v1/templates", handler.ListTemplates)
	app.Get("/v1/templates/:id", handler.GetTemplate)

	app.Post("/v1/webhooks/inbound", handler.InboundWebhook)
}
