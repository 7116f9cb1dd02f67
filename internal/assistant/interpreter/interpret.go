package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/session"
	"calendar-assistant/pkg/deepseek"
)

// Interpret extracts a structured command from the user's text. The system
// prompt anchors relative-time words to the server clock; prior session
// turns go between the system prompt and the current input so follow-up
// utterances resolve against what was said before.
func (i *implInterpreter) Interpret(ctx context.Context, userText string, now time.Time, history []session.Message, calendars []string) (assistant.ParsedCommand, error) {
	messages := make([]deepseek.Message, 0, len(history)+2)
	messages = append(messages, deepseek.Message{
		Role:    "system",
		Content: i.buildSystemPrompt(now),
	})
	for _, m := range history {
		messages = append(messages, deepseek.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, deepseek.Message{
		Role:    "user",
		Content: buildUserPrompt(userText, calendars),
	})

	resp, err := i.llm.ChatCompletion(ctx, &deepseek.Request{
		Model:          i.llm.Model(),
		Messages:       messages,
		Temperature:    InterpretTemperature,
		MaxTokens:      InterpretMaxTokens,
		ResponseFormat: &deepseek.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		i.l.Errorf(ctx, "%s: llm call: %v", LogPrefixInterpret, err)
		return assistant.ParsedCommand{}, fmt.Errorf("%w: %v", assistant.ErrInterpretation, err)
	}

	if len(resp.Choices) == 0 {
		i.l.Warnf(ctx, "%s: empty response", LogPrefixInterpret)
		return assistant.ParsedCommand{}, assistant.ErrInterpretation
	}

	content := stripCodeFences(resp.Choices[0].Message.Content)

	var cmd assistant.ParsedCommand
	if err := json.Unmarshal([]byte(content), &cmd); err != nil {
		i.l.Warnf(ctx, "%s: json parse: %v", LogPrefixInterpret, err)
		return assistant.ParsedCommand{}, fmt.Errorf("%w: %v", assistant.ErrInterpretation, err)
	}

	if err := i.validate(cmd); err != nil {
		return assistant.ParsedCommand{}, err
	}

	i.l.Infof(ctx, "%s: action=%s confidence=%.2f", LogPrefixInterpret, cmd.Action, cmd.Confidence)
	return cmd, nil
}

// validate rejects unusable commands before anything touches the remote
// store: unknown actions and time slots that do not parse.
func (i *implInterpreter) validate(cmd assistant.ParsedCommand) error {
	if !assistant.KnownAction(cmd.Action) {
		return fmt.Errorf("%w: %q", assistant.ErrUnknownAction, cmd.Action)
	}

	for _, v := range []string{cmd.Params.StartTime, cmd.Params.EndTime} {
		if v == "" {
			continue
		}
		if _, err := i.dateMath.ParseDateTime(v); err != nil {
			return fmt.Errorf("%w: %q", assistant.ErrMalformedTime, v)
		}
	}
	for _, v := range []string{cmd.Params.StartDate, cmd.Params.EndDate, cmd.Params.SearchDate} {
		if v == "" {
			continue
		}
		if _, err := i.dateMath.ParseDate(v); err != nil {
			return fmt.Errorf("%w: %q", assistant.ErrMalformedTime, v)
		}
	}
	return nil
}

func (i *implInterpreter) buildSystemPrompt(now time.Time) string {
	now = now.In(i.dateMath.Location())
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := now.AddDate(0, 0, 2).Format("2006-01-02")

	return fmt.Sprintf(promptSystem,
		now.Format("2006-01-02 15:04:05"),
		weekdaysChinese[int(now.Weekday())],
		today, tomorrow, dayAfter,
		tomorrow, today,
		tomorrow, dayAfter, tomorrow,
	)
}

func buildUserPrompt(userText string, calendars []string) string {
	prompt := fmt.Sprintf(promptUserPrefix, userText)
	if len(calendars) > 0 {
		prompt += fmt.Sprintf(promptCalendarsLine, strings.Join(calendars, ", "))
	}
	return prompt
}

// stripCodeFences removes a ```json ... ``` wrapper the model sometimes
// adds despite the json_object response format.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
