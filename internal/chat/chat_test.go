package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationGreeting(t *testing.T) {
	c := NewConversation(0)
	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Text)
	assert.False(t, msgs[0].IsUser)
}

func TestConversationSend(t *testing.T) {
	c := NewConversation(0)

	user, reply, err := c.Send(context.Background(), "Do you support telehealth?")
	require.NoError(t, err)
	assert.True(t, user.IsUser)
	assert.Equal(t, "Do you support telehealth?", user.Text)
	assert.Equal(t, Reply, reply.Text)
	assert.NotEqual(t, user.ID, reply.ID)

	assert.Len(t, c.Messages(), 3)
}

func TestConversationRejectsBlank(t *testing.T) {
	c := NewConversation(0)
	_, _, err := c.Send(context.Background(), "  \n ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, c.Messages(), 1)
}

func TestConversationReplyCancelled(t *testing.T) {
	c := NewConversation(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	user, _, err := c.Send(ctx, "hello")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "hello", user.Text)
	assert.Len(t, c.Messages(), 2, "visitor message kept, no reply")
}
