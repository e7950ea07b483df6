package entity

import "time"

// ConversationTitle is the fixed title given to every new conversation.
const ConversationTitle = "Symptom Checker Conversation"

// Message actors.
const (
	ActorUser  = "user"
	ActorAgent = "agent"
)

// MessageTypeSymptoms is the type of every user-authored message.
const MessageTypeSymptoms = "symptoms"

// Conversation is a symptom checker conversation record.
type Conversation struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

// Message is a single append-only conversation message. Ordering by
// created_at is the backend's responsibility, not enforced locally.
type Message struct {
	ID        string    `json:"id" firestore:"-"`
	Actor     string    `json:"actor" firestore:"actor"`
	Type      string    `json:"type" firestore:"type"`
	Content   []string  `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}
