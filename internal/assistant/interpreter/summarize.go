package interpreter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/deepseek"
)

// SummarizeEvents produces a short natural-language summary of query
// results. Summaries are cosmetic: any model failure degrades to a plain
// count instead of failing the request.
func (i *implInterpreter) SummarizeEvents(ctx context.Context, events []model.CalendarEvent) string {
	if len(events) == 0 {
		return summaryNoEvents
	}

	var b strings.Builder
	for idx, ev := range events {
		if idx == SummarizeEventLimit {
			break
		}
		end := ""
		if ev.EndTime != nil {
			end = ev.EndTime.Format(time.RFC3339)
		}
		fmt.Fprintf(&b, "- %s (%s 到 %s)\n", ev.Title, ev.StartTime.Format(time.RFC3339), end)
	}

	resp, err := i.llm.ChatCompletion(ctx, &deepseek.Request{
		Model: i.llm.Model(),
		Messages: []deepseek.Message{
			{Role: "system", Content: promptSummarySystem},
			{Role: "user", Content: fmt.Sprintf(promptSummaryUser, b.String(), len(events))},
		},
		Temperature: SummarizeTemperature,
		MaxTokens:   SummarizeMaxTokens,
	})
	if err != nil || len(resp.Choices) == 0 {
		i.l.Warnf(ctx, "%s: falling back to count: %v", LogPrefixSummarize, err)
		return fmt.Sprintf(summaryCountFallback, len(events))
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
