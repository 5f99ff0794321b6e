package constants

// Context keys for validated requests
const (
	ContextKeyDemoRequest   = "demoRequest"
	ContextKeyValidateField = "validateField"
	ContextKeyChatMessage   = "chatMessage"
	ContextKeyRequestID     = "RequestID"
)
