package constants

const (
	ErrCodeMissingFields       = "MISSING_REQUIRED_FIELDS"
	ErrCodeInvalidResponseMode = "INVALID_RESPONSE_MODE"
	ErrCodeInvalidSchedule     = "INVALID_SCHEDULE"
	ErrCodeNoValidRecipients   = "NO_VALID_RECIPIENTS"
	ErrCodeCampaignNotFound    = "CAMPAIGN_NOT_FOUND"
	ErrCodeScheduleNotFound    = "SCHEDULE_NOT_FOUND"
	ErrCodeTemplateNotFound    = "TEMPLATE_NOT_FOUND"
	ErrCodeDuplicateTemplate   = "DUPLICATE_TEMPLATE"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgMissingFields       = "missing required fields: campaign_name, message_content, sender_id, and recipients"
	ErrMsgInvalidResponseMode = "two-way mode requires yes_response, no_response, and invalid_response"
	ErrMsgInvalidSchedule     = "scheduled campaigns require a valid scheduled_date, scheduled_time, and timezone"
	ErrMsgNoValidRecipients   = "no valid recipients found"
	ErrMsgCampaignNotFound    = "campaign not found"
	ErrMsgScheduleNotFound    = "scheduled campaign not found"
	ErrMsgTemplateNotFound    = "template not found"
	ErrMsgDuplicateTemplate   = "template already exists"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeMissingFields:       ErrMsgMissingFields,
	ErrCodeInvalidResponseMode: ErrMsgInvalidResponseMode,
	ErrCodeInvalidSchedule:     ErrMsgInvalidSchedule,
	ErrCodeNoValidRecipients:   ErrMsgNoValidRecipients,
	ErrCodeCampaignNotFound:    ErrMsgCampaignNotFound,
	ErrCodeScheduleNotFound:    ErrMsgScheduleNotFound,
	ErrCodeTemplateNotFound:    ErrMsgTemplateNotFound,
	ErrCodeDuplicateTemplate:   ErrMsgDuplicateTemplate,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeMissingFields, ErrCodeInvalidResponseMode, ErrCodeInvalidSchedule,
		ErrCodeNoValidRecipients, ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeCampaignNotFound, ErrCodeScheduleNotFound, ErrCodeTemplateNotFound:
		return 404
	case ErrCodeDuplicateTemplate:
		return 409
	default:
		return 500
	}
}
