package v1

import "github.com/0niran/rhb-send-backend/internal/service"

type CreateCampaignResponse struct {
	CampaignID        string                     `json:"campaign_id"`
	Name              string                     `json:"campaign_name"`
	Status            string                     `json:"status"`
	ValidRecipients   int                        `json:"valid_recipients"`
	InvalidRecipients []service.InvalidRecipient `json:"invalid_recipients,omitempty"`
}

type CampaignResponse struct {
	CampaignID      string `json:"campaign_id"`
	Name            string `json:"campaign_name"`
	SenderID        string `json:"sender_id"`
	ResponseMode    string `json:"response_mode"`
	Status          string `json:"status"`
	TotalRecipients int    `json:"total_recipients"`
	SentCount       int    `json:"sent_count"`
	CreatedAt       string `json:"created_at"`
}

type ListCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int                `json:"total"`
}

type RecipientResponse struct {
	PhoneNumber        string  `json:"phone_number"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	MessageStatus      string  `json:"message_status"`
	ResponseKeyword    *string `json:"response_keyword,omitempty"`
	ResponseReceivedAt *string `json:"response_received_at,omitempty"`
}

type CampaignDetailResponse struct {
	CampaignResponse
	MessageContent string              `json:"message_content"`
	Recipients     []RecipientResponse `json:"recipients"`
}

type StatsResponse struct {
	TotalCampaigns     int `json:"total_campaigns"`
	SentCampaigns      int `json:"sent_campaigns"`
	PendingCampaigns   int `json:"pending_campaigns"`
	FailedCampaigns    int `json:"failed_campaigns"`
	ScheduledCampaigns int `json:"scheduled_campaigns"`
	TotalMessagesSent  int `json:"total_messages_sent"`
	TotalRecipients    int `json:"total_recipients"`
}

type ScheduleResponse struct {
	ScheduleID   string `json:"schedule_id"`
	CampaignID   string `json:"campaign_id"`
	ScheduledFor string `json:"scheduled_for"`
	Timezone     string `json:"timezone"`
	Status       string `json:"status"`
}

type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

type TemplateResponse struct {
	TemplateID  string   `json:"template_id"`
	Name        string   `json:"template_name"`
	Category    string   `json:"category"`
	Content     string   `json:"content"`
	Variables   []string `json:"variables"`
	Description string   `json:"description,omitempty"`
	UsageCount  int      `json:"usage_count"`
}

type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

type MessageLogResponse struct {
	CampaignID      *string `json:"campaign_id,omitempty"`
	PhoneNumber     string  `json:"phone_number"`
	Direction       string  `json:"direction"`
	Content         string  `json:"content"`
	ProviderMsgID   *string `json:"provider_msg_id,omitempty"`
	Status          *string `json:"status,omitempty"`
	ResponseKeyword *string `json:"response_keyword,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type ListMessagesResponse struct {
	Messages []MessageLogResponse `json:"messages"`
	Total    int                  `json:"total"`
}

type InboundWebhookResponse struct {
	Status          string `json:"status"`
	Handled         bool   `json:"handled"`
	ResponseKeyword string `json:"response_keyword,omitempty"`
	Reason          string `json:"reason,omitempty"`
}
