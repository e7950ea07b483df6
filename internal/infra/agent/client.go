// Package agent contains the HTTP client for the external symptom
// checker agent.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"zml/config"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/service"

	"github.com/pkg/errors"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// processRequest is the agent's wire format for a symptom submission.
type processRequest struct {
	ConversationID string   `json:"conversation_id"`
	Selections     []string `json:"selections"`
}

// NewClient creates the symptom agent client. Every call is bounded by
// the configured timeout.
func NewClient(cfg *config.Config, logger *slog.Logger) service.SymptomAgent {
	return &client{
		baseURL: strings.TrimRight(cfg.Agent.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Agent.Timeout,
		},
		logger: logger,
	}
}

// Process posts the selections to {base}/process and returns the parsed
// reply. Timeout expiry maps to the agent-timeout error; any non-200
// status is a generic internal failure.
func (c *client) Process(ctx context.Context, conversationID string, selections []string) (*service.AgentReply, error) {
	body, err := json.Marshal(processRequest{
		ConversationID: conversationID,
		Selections:     selections,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("Forwarding symptoms to agent",
		slog.String("conversationID", conversationID),
		slog.Int("selectionCount", len(selections)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domainerrors.ErrAgentTimeout.WrapMessage("agent call timed out")
		}

		return nil, domainerrors.ErrInternal.
			WithDetails("Failed to get response from agent.").
			WrapMessage("agent call failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Agent returned non-200 status", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrInternal.
			WithDetails("Failed to get response from agent.").
			WrapMessage("agent returned non-200 status")
	}

	var reply service.AgentReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, domainerrors.ErrInternal.
			WithDetails("Invalid response from agent.").
			WrapMessage("decode agent response")
	}

	return &reply, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error

	return errors.As(err, &urlErr) && urlErr.Timeout()
}
