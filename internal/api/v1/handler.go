package v1

import (
	"encoding/json"
	"time"

	"github.com/0niran/rhb-send-backend/internal/constants"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	campaigns service.CampaignService
	schedules service.ScheduleService
	templates service.TemplateService
	inbound   service.InboundWorkflowService
}

func NewHandler(logger *zap.Logger, campaigns service.CampaignService, schedules service.ScheduleService,
	templates service.TemplateService, inbound service.InboundWorkflowService) *Handler {
	return &Handler{
		logger:    logger,
		campaigns: campaigns,
		schedules: schedules,
		templates: templates,
		inbound:   inbound,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "rhb-send",
	})
}

func (h *Handler) CreateCampaign(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CreateCampaignRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	recipients := make([]service.RawRecipient, 0, len(request.Recipients))
	for _, r := range request.Recipients {
		recipients = append(recipients, service.RawRecipient{
			PhoneNumber: r.PhoneNumber,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
		})
	}

	cmd := service.CreateCampaignCommand{
		Name:            request.Name,
		MessageContent:  request.MessageContent,
		TemplateID:      request.TemplateID,
		SenderID:        request.SenderID,
		ResponseMode:    request.ResponseMode,
		YesResponse:     request.YesResponse,
		NoResponse:      request.NoResponse,
		InvalidResponse: request.InvalidResponse,
		Recipients:      recipients,
		SendImmediately: request.SendImmediately,
		ScheduledDate:   request.ScheduledDate,
		ScheduledTime:   request.ScheduledTime,
		Timezone:        request.Timezone,
	}

	resp, err := h.campaigns.CreateCampaign(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to create campaign",
			zap.Error(err),
			zap.String("name", request.Name))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(CreateCampaignResponse{
		CampaignID:        resp.CampaignID,
		Name:              resp.Name,
		Status:            resp.Status,
		ValidRecipients:   resp.ValidRecipients,
		InvalidRecipients: resp.InvalidRecipients,
	})
}

func (h *Handler) ListCampaigns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	campaigns, total, err := h.campaigns.ListCampaigns(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list campaigns", zap.Error(err))
		return err
	}

	items := make([]CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		items = append(items, toCampaignResponse(campaign))
	}

	return c.Status(fiber.StatusOK).JSON(ListCampaignsResponse{Campaigns: items, Total: total})
}

func (h *Handler) GetCampaign(c *fiber.Ctx) error {
	details, err := h.campaigns.GetCampaign(c.Params("id"))
	if err != nil {
		return err
	}

	recipients := make([]RecipientResponse, 0, len(details.Recipients))
	for _, recipient := range details.Recipients {
		item := RecipientResponse{
			PhoneNumber:     recipient.PhoneNumber,
			FirstName:       recipient.FirstName,
			LastName:        recipient.LastName,
			MessageStatus:   string(recipient.MessageStatus),
			ResponseKeyword: recipient.ResponseKeyword,
		}
		if recipient.ResponseReceivedAt != nil {
			receivedAt := recipient.ResponseReceivedAt.Format(time.RFC3339)
			item.ResponseReceivedAt = &receivedAt
		}
		recipients = append(recipients, item)
	}

	return c.Status(fiber.StatusOK).JSON(CampaignDetailResponse{
		CampaignResponse: toCampaignResponse(details.Campaign),
		MessageContent:   details.Campaign.MessageContent,
		Recipients:       recipients,
	})
}

func (h *Handler) ListCampaignMessages(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	messages, err := h.campaigns.ListMessages(c.Params("id"), limit, offset)
	if err != nil {
		return err
	}

	items := make([]MessageLogResponse, 0, len(messages))
	for _, message := range messages {
		items = append(items, MessageLogResponse{
			CampaignID:      message.CampaignID,
			PhoneNumber:     message.PhoneNumber,
			Direction:       string(message.Direction),
			Content:         message.Content,
			ProviderMsgID:   message.ProviderMsgID,
			Status:          message.Status,
			ResponseKeyword: message.ResponseKeyword,
			CreatedAt:       message.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.Status(fiber.StatusOK).JSON(ListMessagesResponse{Messages: items, Total: len(items)})
}

func (h *Handler) Stats(c *fiber.Ctx) error {
	stats, err := h.campaigns.Stats()
	if err != nil {
		h.logger.Error("Failed to load campaign stats", zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(StatsResponse{
		TotalCampaigns:     stats.TotalCampaigns,
		SentCampaigns:      stats.SentCampaigns,
		PendingCampaigns:   stats.PendingCampaigns,
		FailedCampaigns:    stats.FailedCampaigns,
		ScheduledCampaigns: stats.ScheduledCampaigns,
		TotalMessagesSent:  stats.TotalMessagesSent,
		TotalRecipients:    stats.TotalRecipients,
	})
}

func (h *Handler) ListSchedules(c *fiber.Ctx) error {
	schedules, err := h.schedules.ListSchedules()
	if err != nil {
		h.logger.Error("Failed to list schedules", zap.Error(err))
		return err
	}

	items := make([]ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		items = append(items, ScheduleResponse{
			ScheduleID:   schedule.ScheduleID,
			CampaignID:   schedule.CampaignID,
			ScheduledFor: schedule.ScheduledFor.Format(time.RFC3339),
			Timezone:     schedule.Timezone,
			Status:       string(schedule.Status),
		})
	}

	return c.Status(fiber.StatusOK).JSON(ListSchedulesResponse{Schedules: items, Total: len(items)})
}

func (h *Handler) CancelSchedule(c *fiber.Ctx) error {
	scheduleID := c.Params("id")

	if err := h.schedules.CancelSchedule(c.UserContext(), scheduleID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"schedule_id": scheduleID,
		"status":      string(model.ScheduleStatusCancelled),
	})
}

func (h *Handler) CreateTemplate(c *fiber.Ctx) error {
	var request CreateTemplateRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	template, err := h.templates.CreateTemplate(c.UserContext(), service.CreateTemplateCommand{
		Name:        request.Name,
		Category:    request.Category,
		Content:     request.Content,
		Variables:   request.Variables,
		Description: request.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toTemplateResponse(*template))
}

func (h *Handler) GetTemplate(c *fiber.Ctx) error {
	template, err := h.templates.GetTemplate(c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(toTemplateResponse(*template))
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.templates.ListTemplates()
	if err != nil {
		h.logger.Error("Failed to list templates", zap.Error(err))
		return err
	}

	items := make([]TemplateResponse, 0, len(templates))
	for _, template := range templates {
		items = append(items, toTemplateResponse(template))
	}

	return c.Status(fiber.StatusOK).JSON(ListTemplatesResponse{Templates: items, Total: len(items)})
}

func (h *Handler) InboundWebhook(c *fiber.Ctx) error {
	var request InboundWebhookRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse webhook body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if request.From == "" || request.Body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeMissingFields,
			"message": "From and Body are required",
		})
	}

	cmd := service.InboundMessageCommand{
		PhoneNumber:       smsprovider.FormatPhoneNumber(request.From),
		Body:              request.Body,
		ProviderMessageID: request.MessageSid,
	}

	result, err := h.inbound.ProcessInbound(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Failed to process inbound message",
			zap.Error(err),
			zap.String("from", request.From))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(InboundWebhookResponse{
		Status:          "received",
		Handled:         result.Handled,
		ResponseKeyword: result.ResponseKeyword,
		Reason:          result.Reason,
	})
}

func toCampaignResponse(campaign model.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:      campaign.CampaignID,
		Name:            campaign.Name,
		SenderID:        campaign.SenderID,
		ResponseMode:    string(campaign.ResponseMode),
		Status:          string(campaign.Status),
		TotalRecipients: campaign.TotalRecipients,
		SentCount:       campaign.SentCount,
		CreatedAt:       campaign.CreatedAt.Format(time.RFC3339),
	}
}

func toTemplateResponse(template model.Template) TemplateResponse {
	var variables []string
	if len(template.Variables) > 0 {
		_ = json.Unmarshal(template.Variables, &variables)
	}

	return TemplateResponse{
		TemplateID:  template.TemplateID,
		Name:        template.Name,
		Category:    template.Category,
		Content:     template.Content,
		Variables:   variables,
		Description: template.Description,
		UsageCount:  template.UsageCount,
	}
}
