package usecase

import (
	"context"

	"calendar-assistant/internal/assistant"
)

// History returns the session's recorded turns, oldest first.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (assistant.HistoryOutput, error) {
	return assistant.HistoryOutput{
		SessionID: sessionID,
		Turns:     uc.sessions.Get(sessionID),
	}, nil
}

// ClearHistory empties the session. Clearing an unknown session succeeds.
func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	uc.sessions.Clear(sessionID)
	return nil
}
