package routes

import (
	"medisync/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupChatRoutes configures the chat widget routes
func SetupChatRoutes(router *gin.RouterGroup, chat *handlers.ChatHandler, m *Middleware) {
	router.GET("/chat/messages", chat.OpenConversation)
	router.POST("/chat/messages", m.Validation.ValidateChatMessage(), chat.SendMessage)
}
