package smsprovider

// Response is the provider's acknowledgement of an accepted message.
type Response struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	To        string `json:"to"`
	From      string `json:"from"`
	Body      string `json:"body"`
}
