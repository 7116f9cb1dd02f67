package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/config"
	"calendar-assistant/internal/assistant"
	assistantHTTP "calendar-assistant/internal/assistant/delivery/http"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/model"
)

type mockUseCase struct {
	executeOut assistant.ExecuteCommandOutput
	historyOut assistant.HistoryOutput
	gotInput   assistant.ExecuteCommandInput
	cleared    string
}

func (m *mockUseCase) ExecuteCommand(ctx context.Context, input assistant.ExecuteCommandInput) (assistant.ExecuteCommandOutput, error) {
	m.gotInput = input
	return m.executeOut, nil
}

func (m *mockUseCase) History(ctx context.Context, sessionID string) (assistant.HistoryOutput, error) {
	return m.historyOut, nil
}

func (m *mockUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	m.cleared = sessionID
	return nil
}

func newTestRouter(t *testing.T, uc assistant.UseCase, rateLimitPerMin int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Session.RateLimitPerMin = rateLimitPerMin

	router := gin.New()
	h := assistantHTTP.New(&mockLogger{}, uc)
	assistantHTTP.RegisterRoutes(router.Group("/api/v1/assistant"), h, middleware.New(&mockLogger{}, cfg))
	return router
}

func doJSON(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExecuteCommandEndpoint(t *testing.T) {
	t.Run("Success Envelope Carries The Message", func(t *testing.T) {
		end := time.Date(2025, 11, 13, 16, 0, 0, 0, time.UTC)
		uc := &mockUseCase{executeOut: assistant.ExecuteCommandOutput{
			Success:     true,
			ActionTaken: assistant.ActionCreateEvent,
			Message:     "已创建事件: 开会",
			Event: &model.CalendarEvent{
				ID:        "/calendars/alice/work/uid.ics",
				Title:     "开会",
				StartTime: end.Add(-time.Hour),
				EndTime:   &end,
			},
		}}
		router := newTestRouter(t, uc, 600)

		w := doJSON(router, http.MethodPost, "/api/v1/assistant/execute-command",
			`{"text":"明天下午三点安排开会","session_id":"s1"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.gotInput.Text != "明天下午三点安排开会" || uc.gotInput.SessionID != "s1" {
			t.Errorf("input not forwarded: %+v", uc.gotInput)
		}

		var envelope struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Data    struct {
				Success     bool   `json:"success"`
				ActionTaken string `json:"action_taken"`
				Event       *struct {
					ID        string `json:"id"`
					StartTime string `json:"start_time"`
				} `json:"event"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if !envelope.Success || envelope.Message != "已创建事件: 开会" {
			t.Errorf("unexpected envelope: %+v", envelope)
		}
		if envelope.Data.ActionTaken != "create_event" || envelope.Data.Event == nil {
			t.Errorf("unexpected data: %+v", envelope.Data)
		}
		if _, err := time.Parse(time.RFC3339, envelope.Data.Event.StartTime); err != nil {
			t.Errorf("start_time not RFC3339: %q", envelope.Data.Event.StartTime)
		}
	})

	t.Run("Missing Text Is Bad Request", func(t *testing.T) {
		router := newTestRouter(t, &mockUseCase{}, 600)
		w := doJSON(router, http.MethodPost, "/api/v1/assistant/execute-command",
			`{"session_id":"s1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Rate Limit Returns 429 Per Session", func(t *testing.T) {
		router := newTestRouter(t, &mockUseCase{}, 10)
		headers := map[string]string{"X-Session-ID": "busy"}

		// Burst for 10/min is 1, so the second immediate call is throttled.
		first := doJSON(router, http.MethodPost, "/api/v1/assistant/execute-command",
			`{"text":"查询日程","session_id":"busy"}`, headers)
		if first.Code != http.StatusOK {
			t.Fatalf("first request must pass, got %d", first.Code)
		}
		second := doJSON(router, http.MethodPost, "/api/v1/assistant/execute-command",
			`{"text":"查询日程","session_id":"busy"}`, headers)
		if second.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", second.Code)
		}

		// A different session has its own bucket.
		other := doJSON(router, http.MethodPost, "/api/v1/assistant/execute-command",
			`{"text":"查询日程","session_id":"calm"}`, map[string]string{"X-Session-ID": "calm"})
		if other.Code != http.StatusOK {
			t.Errorf("other session must not be throttled, got %d", other.Code)
		}
	})
}

func TestHistoryEndpoints(t *testing.T) {
	t.Run("History Requires Session ID", func(t *testing.T) {
		router := newTestRouter(t, &mockUseCase{}, 600)
		w := doJSON(router, http.MethodGet, "/api/v1/assistant/history", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("History Returns Turns", func(t *testing.T) {
		uc := &mockUseCase{historyOut: assistant.HistoryOutput{
			SessionID: "s1",
			Turns: []model.Turn{
				{Role: model.RoleUser, Content: "明天有什么安排", Timestamp: time.Now()},
				{Role: model.RoleAssistant, Content: "找到了 2 个事件。", Timestamp: time.Now()},
			},
		}}
		router := newTestRouter(t, uc, 600)

		w := doJSON(router, http.MethodGet, "/api/v1/assistant/history?session_id=s1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var envelope struct {
			Data struct {
				SessionID string `json:"session_id"`
				Turns     []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"turns"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if envelope.Data.SessionID != "s1" || len(envelope.Data.Turns) != 2 {
			t.Errorf("unexpected data: %+v", envelope.Data)
		}
		if envelope.Data.Turns[0].Role != "user" || envelope.Data.Turns[1].Role != "assistant" {
			t.Errorf("roles lost: %+v", envelope.Data.Turns)
		}
	})

	t.Run("Clear Forwards Session ID", func(t *testing.T) {
		uc := &mockUseCase{}
		router := newTestRouter(t, uc, 600)

		w := doJSON(router, http.MethodDelete, "/api/v1/assistant/history?session_id=s9", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.cleared != "s9" {
			t.Errorf("session id not forwarded: %q", uc.cleared)
		}
	})
}
