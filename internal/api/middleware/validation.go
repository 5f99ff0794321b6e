package middleware

import (
	"medisync/internal/api/constants"
	"medisync/internal/api/dto/v1/chat"
	"medisync/internal/api/dto/v1/demo"
	"medisync/internal/api/validation"
	"medisync/internal/utils"

	"github.com/gin-gonic/gin"
)

// ValidationMiddleware binds request bodies and stores them in the context
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

func bindJSON[T any](key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req T
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleValidationError(c, "Invalid request body", validation.FormatValidationError(err))
			return
		}
		c.Set(key, &req)
		c.Next()
	}
}

// ValidateDemoRequest binds the demo form. Field rules are applied by the
// form session, not here, so the response carries the form's own messages.
func (m *ValidationMiddleware) ValidateDemoRequest() gin.HandlerFunc {
	return bindJSON[demo.DemoRequest](constants.ContextKeyDemoRequest)
}

// ValidateFieldRequest binds a single-field validation request
func (m *ValidationMiddleware) ValidateFieldRequest() gin.HandlerFunc {
	return bindJSON[demo.ValidateFieldRequest](constants.ContextKeyValidateField)
}

// ValidateChatMessage binds a chat widget message
func (m *ValidationMiddleware) ValidateChatMessage() gin.HandlerFunc {
	return bindJSON[chat.SendMessageRequest](constants.ContextKeyChatMessage)
}
