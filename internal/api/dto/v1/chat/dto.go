package chat

import "medisync/internal/chat"

// SendMessageRequest is a visitor message from the chat widget
type SendMessageRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// SendMessageResponse returns the echoed visitor message and the reply
type SendMessageResponse struct {
	Message chat.Message `json:"message"`
	Reply   chat.Message `json:"reply"`
	// History is the widget transcript, greeting first
	History []chat.Message `json:"history"`
}

// ConversationResponse is the transcript a freshly opened widget shows
type ConversationResponse struct {
	Messages []chat.Message `json:"messages"`
}
