package firestore

import (
	"context"
	"fmt"
	"log/slog"

	"zml/internal/domain/entity"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

const (
	collectionConversations = "conversations"
	subcollectionMessages   = "messages"
)

type conversationRepository struct {
	client *fs.Client
	col    *Collection[entity.Conversation]
	logger *slog.Logger
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(client *fs.Client, logger *slog.Logger) repository.ConversationRepository {
	return &conversationRepository{
		client: client,
		col:    NewCollection[entity.Conversation](client, collectionConversations),
		logger: logger,
	}
}

// StartConversation creates a conversation with a backend-generated id,
// the fixed title and a server creation timestamp.
func (repo *conversationRepository) StartConversation(ctx context.Context) (string, error) {
	ref := repo.client.Collection(collectionConversations).NewDoc()

	_, err := ref.Set(ctx, map[string]any{
		"created_at": fs.ServerTimestamp,
		"title":      entity.ConversationTitle,
	})
	if err != nil {
		repo.logger.Error("Failed to start conversation", slog.Any("error", err))

		return "", domainerrors.NewDatabaseError(err, "failed to start conversation")
	}

	return ref.ID, nil
}

// CreateUserMessage appends the submitted symptoms as a user message.
func (repo *conversationRepository) CreateUserMessage(ctx context.Context, conversationID string, symptoms []string) error {
	return repo.appendMessage(ctx, conversationID, entity.ActorUser, entity.MessageTypeSymptoms, symptoms)
}

// CreateAgentMessage appends the agent's reply to the conversation.
func (repo *conversationRepository) CreateAgentMessage(ctx context.Context, conversationID string, content []string, messageType string) error {
	return repo.appendMessage(ctx, conversationID, entity.ActorAgent, messageType, content)
}

// GetConversation returns the conversation record, or nil when it does
// not exist.
func (repo *conversationRepository) GetConversation(ctx context.Context, conversationID string) (*entity.Conversation, error) {
	conversation, err := repo.col.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, nil
	}

	conversation.ID = conversationID

	return conversation, nil
}

// appendMessage writes one message into the conversation's messages
// subcollection. Messages are append-only; nothing updates or deletes
// them, and ordering by created_at is left to the backend.
func (repo *conversationRepository) appendMessage(ctx context.Context, conversationID, actor, messageType string, content []string) error {
	ref := repo.client.
		Collection(collectionConversations).
		Doc(conversationID).
		Collection(subcollectionMessages).
		NewDoc()

	_, err := ref.Set(ctx, map[string]any{
		"actor":      actor,
		"type":       messageType,
		"content":    content,
		"created_at": fs.ServerTimestamp,
	})
	if err != nil {
		repo.logger.Error("Failed to append message",
			slog.String("conversationID", conversationID),
			slog.String("actor", actor),
			slog.Any("error", err),
		)

		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to add %s message to conversation %s", actor, conversationID))
	}

	return nil
}
