package impl

import (
	"context"
	"log/slog"

	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/repository"
	"zml/internal/domain/service"
	"zml/internal/usecase"
)

// symptomCheckerService implements the SymptomCheckerUsecase interface.
type symptomCheckerService struct {
	repo   repository.ConversationRepository
	agent  service.SymptomAgent
	logger *slog.Logger
}

// NewSymptomCheckerService is the constructor for symptomCheckerService.
func NewSymptomCheckerService(
	repo repository.ConversationRepository,
	agent service.SymptomAgent,
	logger *slog.Logger,
) usecase.SymptomCheckerUsecase {
	return &symptomCheckerService{
		repo:   repo,
		agent:  agent,
		logger: logger,
	}
}

// Init starts a new conversation and returns its backend-generated id.
func (srv *symptomCheckerService) Init(ctx context.Context) (*usecase.InitConversationOutput, error) {
	srv.logger.Info("Initializing symptom checker conversation")

	conversationID, err := srv.repo.StartConversation(ctx)
	if err != nil {
		return nil, passThrough(err, "failed to initialize symptom checker")
	}

	srv.logger.Info("Conversation started", slog.String("conversationID", conversationID))

	return &usecase.InitConversationOutput{ConversationID: conversationID}, nil
}

// Submit records the user's symptoms, forwards them to the agent and
// records the agent's reply. The user message is written before calling
// the agent and is not rolled back on agent failure, so a failed
// submission can leave a user message with no paired agent response.
func (srv *symptomCheckerService) Submit(ctx context.Context, input *usecase.SubmitSymptomsInput) (*usecase.SubmitSymptomsOutput, error) {
	srv.logger.Info("Submitting symptoms", slog.String("conversationID", input.ConversationID))

	if err := srv.repo.CreateUserMessage(ctx, input.ConversationID, input.Symptoms); err != nil {
		return nil, passThrough(err, "failed to submit symptoms")
	}

	reply, err := srv.agent.Process(ctx, input.ConversationID, input.Symptoms)
	if err != nil {
		return nil, passThrough(err, "failed to get response from agent")
	}

	if len(reply.Content) == 0 || reply.MessageType == "" {
		return nil, domainerrors.ErrInternal.
			WithDetails("Invalid response from agent.").
			WrapMessage("agent reply missing content or message type")
	}

	if err := srv.repo.CreateAgentMessage(ctx, input.ConversationID, reply.Content, reply.MessageType); err != nil {
		return nil, passThrough(err, "failed to record agent message")
	}

	srv.logger.Info("Symptoms submitted successfully", slog.String("conversationID", input.ConversationID))

	return &usecase.SubmitSymptomsOutput{Detail: "Symptoms submitted successfully."}, nil
}
