package assistant

import "context"

// UseCase drives the natural-language command pipeline.
type UseCase interface {
	ExecuteCommand(ctx context.Context, input ExecuteCommandInput) (ExecuteCommandOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	ClearHistory(ctx context.Context, sessionID string) error
}
