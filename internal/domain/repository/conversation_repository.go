package repository

import (
	"context"

	"zml/internal/domain/entity"
)

// ConversationRepository stores symptom checker conversations and their
// append-only message log.
type ConversationRepository interface {
	// StartConversation creates a new conversation with a backend-generated
	// id and returns that id.
	StartConversation(ctx context.Context) (string, error)

	// CreateUserMessage appends a user message carrying the submitted
	// symptoms to the conversation.
	CreateUserMessage(ctx context.Context, conversationID string, symptoms []string) error

	// CreateAgentMessage appends an agent message to the conversation.
	CreateAgentMessage(ctx context.Context, conversationID string, content []string, messageType string) error

	// GetConversation returns nil when the conversation does not exist.
	GetConversation(ctx context.Context, conversationID string) (*entity.Conversation, error)
}
