package service

import "context"

// AgentReply is the parsed response of the external symptom agent.
type AgentReply struct {
	Content     []string `json:"content"`
	MessageType string   `json:"message_type"`
}

// SymptomAgent is the external agent the symptom checker forwards to.
type SymptomAgent interface {
	// Process posts the selected symptoms for a conversation and returns
	// the agent's reply. The call is bounded by the configured timeout;
	// expiry surfaces as the agent-timeout domain error.
	Process(ctx context.Context, conversationID string, selections []string) (*AgentReply, error)
}
