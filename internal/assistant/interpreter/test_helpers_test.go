package interpreter_test

import (
	"context"

	"calendar-assistant/pkg/deepseek"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockLLM captures the request and plays back a canned reply.
type mockLLM struct {
	gotReq  *deepseek.Request
	content string
	err     error
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &deepseek.Response{
		Choices: []deepseek.Choice{
			{Message: deepseek.Message{Role: "assistant", Content: m.content}},
		},
	}, nil
}

func (m *mockLLM) Model() string { return "deepseek-test" }

// emptyLLM returns a response with no choices.
type emptyLLM struct{}

func (e *emptyLLM) ChatCompletion(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	return &deepseek.Response{}, nil
}

func (e *emptyLLM) Model() string { return "deepseek-test" }
