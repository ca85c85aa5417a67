package constants

// User facing messages shown on the login and home screens.
const (
	MessageInvalidIP   = "Invalid IP address"
	MessageFetchFailed = "Failed to fetch geo info"
	MessageLoginFailed = "Login failed. Try again."
)
