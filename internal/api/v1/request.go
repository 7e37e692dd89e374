package v1

type RecipientRequest struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

type CreateCampaignRequest struct {
	Name            string             `json:"campaign_name"`
	MessageContent  string             `json:"message_content"`
	TemplateID      string             `json:"template_id"`
	SenderID        string             `json:"sender_id"`
	ResponseMode    string             `json:"response_mode"`
	YesResponse     string             `json:"yes_response"`
	NoResponse      string             `json:"no_response"`
	InvalidResponse string             `json:"invalid_response"`
	Recipients      []RecipientRequest `json:"recipients"`
	SendImmediately bool               `json:"send_immediately"`
	ScheduledDate   string             `json:"scheduled_date"`
	ScheduledTime   string             `json:"scheduled_time"`
	Timezone        string             `json:"timezone"`
}

// InboundWebhookRequest is the provider's delivery callback, posted as form
// data in the Twilio style.
type InboundWebhookRequest struct {
	From       string `form:"From" json:"From"`
	Body       string `form:"Body" json:"Body"`
	MessageSid string `form:"MessageSid" json:"MessageSid"`
}

type CreateTemplateRequest struct {
	Name        string   `json:"template_name"`
	Category    string   `json:"category"`
	Content     string   `json:"content"`
	Variables   []string `json:"variables"`
	Description string   `json:"description"`
}
