// Package chat implements the site's assistant widget: visitors post a
// message and receive a canned reply after a short delay.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	Greeting = "Hi there! How can I help you with MediSync today?"
	Reply    = "Thanks for your message! Our team will get back to you shortly. In the meantime, feel free to explore our services or schedule a demo."

	DefaultReplyDelay = time.Second
)

var ErrEmptyMessage = errors.New("message is empty")

// Message is one chat bubble
type Message struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	IsUser bool      `json:"is_user"`
	SentAt time.Time `json:"sent_at"`
}

// Conversation is the message history of one widget
type Conversation struct {
	replyDelay time.Duration

	mu       sync.Mutex
	messages []Message
}

// NewConversation starts a conversation with the assistant greeting
func NewConversation(replyDelay time.Duration) *Conversation {
	if replyDelay < 0 {
		replyDelay = 0
	}
	return &Conversation{
		replyDelay: replyDelay,
		messages:   []Message{newMessage(Greeting, false)},
	}
}

func newMessage(text string, isUser bool) Message {
	return Message{
		ID:     uuid.NewString(),
		Text:   text,
		IsUser: isUser,
		SentAt: time.Now().UTC(),
	}
}

// Send records the visitor's text and waits for the assistant reply. When
// ctx ends before the reply is due, the visitor message is kept and ctx's
// error is returned.
func (c *Conversation) Send(ctx context.Context, text string) (Message, Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, Message{}, ErrEmptyMessage
	}

	userMsg := newMessage(text, true)
	c.append(userMsg)

	if c.replyDelay > 0 {
		timer := time.NewTimer(c.replyDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return userMsg, Message{}, ctx.Err()
		}
	}

	reply := newMessage(Reply, false)
	c.append(reply)
	return userMsg, reply, nil
}

func (c *Conversation) append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
}

// Messages returns the history, oldest first
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
