package selfqa

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/selfqa-api/internal/domain"
)

// ErrNoModelClient is the uniform failure every unit of work reports when
// no model client could be constructed upstream. It never escapes the
// dispatcher; it only shows up in logs.
var ErrNoModelClient = errors.New("no model client available")

// ModelClient is the boundary to the external chat-completion service.
// Implementations must be safe for concurrent use: the dispatcher shares
// one client across all in-flight workers.
type ModelClient interface {
	// Complete sends the ordered messages to the model and returns the
	// response text, or an error if the call fails for any reason.
	Complete(ctx context.Context, messages []domain.Message) (string, error)
}

// executeRequest is one unit of work: it builds the two-message request
// for a single question, invokes the model client, and returns the
// resulting pair. On any failure it logs the full error and returns nil.
// The failure is swallowed here and never reaches the caller or aborts
// sibling requests; do not turn this into a retry or an abort.
func executeRequest(
	ctx context.Context,
	client ModelClient,
	systemPrompt string,
	question string,
	logger *slog.Logger,
) *domain.QAPair {
	if client == nil {
		logger.Error("self-qa request failed",
			"question", question,
			"error", ErrNoModelClient)
		return nil
	}

	messages := []domain.Message{
		{Role: domain.RoleSystem, Content: systemPrompt},
		{Role: domain.RoleUser, Content: question},
	}

	answer, err := client.Complete(ctx, messages)
	if err != nil {
		logger.Error("self-qa request failed",
			"question", question,
			"error", err)
		return nil
	}

	return &domain.QAPair{User: question, Assistant: answer}
}
