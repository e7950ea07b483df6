package usecase

import "context"

// SymptomCheckerUsecase defines the interface for the symptom checker
// conversation proxy.
type SymptomCheckerUsecase interface {
	Init(ctx context.Context) (*InitConversationOutput, error)
	Submit(ctx context.Context, input *SubmitSymptomsInput) (*SubmitSymptomsOutput, error)
}

// --- Input DTOs ---

// SubmitSymptomsInput defines the body for a symptom submission.
type SubmitSymptomsInput struct {
	ConversationID string   `json:"conversation_id" validate:"required"`
	Symptoms       []string `json:"symptoms" validate:"required"`
}

// --- Output DTOs ---

// InitConversationOutput carries the backend-generated conversation id.
type InitConversationOutput struct {
	ConversationID string `json:"conversation_id"`
}

// SubmitSymptomsOutput is the fixed submission acknowledgment.
type SubmitSymptomsOutput struct {
	Detail string `json:"detail"`
}
