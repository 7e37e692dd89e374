package smsprovider

// Failure classes reported by the transport. Server, timeout, and network
// failures are retried; an invalid number is not.
const (
	ErrorCodeServerError   = "SERVER_ERROR"
	ErrorCodeTimeout       = "TIMEOUT"
	ErrorCodeInvalidNumber = "INVALID_NUMBER"
	ErrorCodeNetworkError  = "NETWORK_ERROR"
)
