package impl

import (
	"context"
	"net/http"
	"testing"

	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/service"
	"zml/internal/errors"
	mockRepo "zml/internal/mocks/repository"
	mockService "zml/internal/mocks/service"
	"zml/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymptomCheckerService_Init_Success(t *testing.T) {
	repo := mockRepo.NewMockConversationRepository(t)
	agent := mockService.NewMockSymptomAgent(t)
	checker := NewSymptomCheckerService(repo, agent, newDiscardLogger())

	ctx := context.Background()

	repo.EXPECT().StartConversation(ctx).Return("conv-abc", nil)

	output, err := checker.Init(ctx)

	require.NoError(t, err)
	assert.Equal(t, "conv-abc", output.ConversationID)
}

func TestSymptomCheckerService_Init_StorageFailure(t *testing.T) {
	repo := mockRepo.NewMockConversationRepository(t)
	agent := mockService.NewMockSymptomAgent(t)
	checker := NewSymptomCheckerService(repo, agent, newDiscardLogger())

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseError(errors.New("unavailable"), "failed to start conversation")

	repo.EXPECT().StartConversation(ctx).Return("", dbErr)

	output, err := checker.Init(ctx)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
}

func TestSymptomCheckerService_Submit_Success(t *testing.T) {
	repo := mockRepo.NewMockConversationRepository(t)
	agent := mockService.NewMockSymptomAgent(t)
	checker := NewSymptomCheckerService(repo, agent, newDiscardLogger())

	ctx := context.Background()
	symptoms := []string{"headache", "fever"}
	reply := &service.AgentReply{
		Content:     []string{"How long have you had the fever?"},
		MessageType: "question",
	}

	repo.EXPECT().CreateUserMessage(ctx, "conv-abc", symptoms).Return(nil)
	agent.EXPECT().Process(ctx, "conv-abc", symptoms).Return(reply, nil)
	repo.EXPECT().
		CreateAgentMessage(ctx, "conv-abc", reply.Content, "question").
		Return(nil)

	output, err := checker.Submit(ctx, &usecase.SubmitSymptomsInput{
		ConversationID: "conv-abc",
		Symptoms:       symptoms,
	})

	require.NoError(t, err)
	assert.Equal(t, "Symptoms submitted successfully.", output.Detail)
}

// The user's message is written before the agent call and must survive
// an agent failure unpaired.
func TestSymptomCheckerService_Submit_AgentFailureKeepsUserMessage(t *testing.T) {
	repo := mockRepo.NewMockConversationRepository(t)
	agent := mockService.NewMockSymptomAgent(t)
	checker := NewSymptomCheckerService(repo, agent, newDiscardLogger())

	ctx := context.Background()
	symptoms := []string{"headache"}
	agentErr := domainerrors.ErrInternal.WithDetails("Failed to get response from agent.")

	repo.EXPECT().CreateUserMessage(ctx, "conv-abc", symptoms).Return(nil)
	agent.EXPECT().Process(ctx, "conv-abc", symptoms).Return(nil, agentErr)

	output, err := checker.Submit(ctx, &usecase.SubmitSymptomsInput{
		ConversationID: "conv-abc",
		Symptoms:       symptoms,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
	// CreateAgentMessage was never expected; the mock asserts no rollback
	// write happened either.
}

func TestSymptomCheckerService_Submit_AgentTimeout(t *testing.T) {
	repo := mockRepo.NewMockConversationRepository(t)
	agent := mockService.NewMockSymptomAgent(t)
	checker := NewSymptomCheckerService(repo, agent, newDiscardLogger())

	ctx := context.Background()
	symptoms := []string{"headache"}
	timeoutErr := domainerrors.ErrAgentTimeout.
		WithDetails("The agent did not respond within the configured timeout.")

	repo.EXPECT().CreateUserMessage(ctx, "conv-abc", symptoms).Return(nil)
	agent.EXPECT().Process(ctx, "conv-abc", symptoms).Return(nil, timeoutErr)

	output, err := checker.Submit(ctx, &usecase.SubmitSymptomsInput{
		ConversationID: "conv-abc",
		Symptoms:       symptoms,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AGENT_TIMEOUT", appErr.ErrorCode())
	assert.Equal(t, http.StatusGatewayTimeout, appErr.HTTPCode())
}

func TestSymptomCheckerService_Submit_MalformedAgentReply(t *testing.T) {
	tests := []struct {
		name  string
		reply *service.AgentReply
	}{
		{"empty content", &service.AgentReply{Content: []string{}, MessageType: "question"}},
		{"missing message type", &service.AgentReply{Content: []string{"hm"}, MessageType: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockConversationRepository(t)
			agent := mockService.NewMockSymptomAgent(t)
			checker := NewSymptomCheckerService(repo, agent, newDiscardLogger())

			ctx := context.Background()
			symptoms := []string{"headache"}

			repo.EXPECT().CreateUserMessage(ctx, "conv-abc", symptoms).Return(nil)
			agent.EXPECT().Process(ctx, "conv-abc", symptoms).Return(tt.reply, nil)

			output, err := checker.Submit(ctx, &usecase.SubmitSymptomsInput{
				ConversationID: "conv-abc",
				Symptoms:       symptoms,
			})

			require.Error(t, err)
			assert.Nil(t, output)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
			assert.Equal(t, "Invalid response from agent.", appErr.Details())
		})
	}
}
