package service

// RawRecipient is one row of an uploaded recipient list, before validation.
type RawRecipient struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// InvalidRecipient reports exactly which row of an uploaded list failed and
// why, so the caller can surface it to the operator.
type InvalidRecipient struct {
	Index              int    `json:"index"`
	PhoneNumber        string `json:"phone_number"`
	CleanedPhoneNumber string `json:"cleaned_phone_number,omitempty"`
	Reason             string `json:"reason"`
}

type CreateCampaignCommand struct {
	Name            string
	MessageContent  string
	TemplateID      string
	SenderID        string
	ResponseMode    string
	YesResponse     string
	NoResponse      string
	InvalidResponse string
	Recipients      []RawRecipient
	SendImmediately bool
	ScheduledDate   string
	ScheduledTime   string
	Timezone        string
}

type CreateCampaignResponse struct {
	CampaignID        string
	Name              string
	Status            string
	ValidRecipients   int
	InvalidRecipients []InvalidRecipient
}

// DispatchCampaignCommand is the queue payload consumed by worker-dispatch.
type DispatchCampaignCommand struct {
	CampaignID string `json:"campaign_id"`
}

// InboundMessageCommand carries one inbound webhook delivery.
type InboundMessageCommand struct {
	PhoneNumber       string
	Body              string
	ProviderMessageID string
}

// CorrelationResult is the outcome of resolving an inbound message to a
// campaign. Handled=false with a Reason is a normal business outcome, not an
// error.
type CorrelationResult struct {
	Handled         bool
	CampaignID      string
	SenderID        string
	ResponseKeyword string
	ResponseMessage string
	Reason          string
}

// SendFailure itemizes one recipient whose send attempt failed.
type SendFailure struct {
	PhoneNumber string `json:"phone_number"`
	Error       string `json:"error"`
}

// DispatchResult summarizes a batch dispatch run.
type DispatchResult struct {
	SentCount int
	Failures  []SendFailure
}

// DispatchJob pairs a due schedule with the campaign it should dispatch.
type DispatchJob struct {
	ScheduleID string
	CampaignID string
}

type CreateTemplateCommand struct {
	Name        string
	Category    string
	Content     string
	Variables   []string
	Description string
}
