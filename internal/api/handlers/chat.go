package handlers

import (
	"errors"
	"net/http"
	"time"

	"medisync/internal/api/constants"
	"medisync/internal/api/dto/common"
	chatdto "medisync/internal/api/dto/v1/chat"
	"medisync/internal/chat"
	"medisync/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	replyDelay time.Duration
}

func NewChatHandler(replyDelay time.Duration) *ChatHandler {
	return &ChatHandler{replyDelay: replyDelay}
}

// SendMessage answers a chat widget message with the assistant reply
func (h *ChatHandler) SendMessage(c *gin.Context) {
	req := c.MustGet(constants.ContextKeyChatMessage).(*chatdto.SendMessageRequest)

	conv := chat.NewConversation(h.replyDelay)
	msg, reply, err := conv.Send(c.Request.Context(), req.Message)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		utils.HandleValidationError(c, "Message is empty", []common.ValidationError{{Field: "message", Message: "is required"}})
		return
	case err != nil:
		utils.HandleAPIError(c, err, http.StatusServiceUnavailable, common.ErrCodeUnavailable, "Chat reply interrupted")
		return
	}

	utils.HandleSuccess(c, chatdto.SendMessageResponse{Message: msg, Reply: reply, History: conv.Messages()})
}

// OpenConversation returns the greeting shown when the widget opens
func (h *ChatHandler) OpenConversation(c *gin.Context) {
	conv := chat.NewConversation(h.replyDelay)
	utils.HandleSuccess(c, chatdto.ConversationResponse{Messages: conv.Messages()})
}
