package http

import (
	"errors"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/response"
)

var (
	errMissingText      = errors.New("text is required")
	errMissingSessionID = errors.New("session_id is required")
)

// --- Request DTOs ---

type executeCommandReq struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
}

func (r executeCommandReq) validate() error {
	if r.Text == "" {
		return errMissingText
	}
	if r.SessionID == "" {
		return errMissingSessionID
	}
	return nil
}

func (r executeCommandReq) toInput() assistant.ExecuteCommandInput {
	return assistant.ExecuteCommandInput{
		SessionID: r.SessionID,
		Text:      r.Text,
	}
}

type historyReq struct {
	SessionID string `form:"session_id"`
}

func (r historyReq) validate() error {
	if r.SessionID == "" {
		return errMissingSessionID
	}
	return nil
}

// --- Response DTOs ---

type commandEventResp struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Location  string  `json:"location,omitempty"`
}

func newCommandEventResp(ev model.CalendarEvent) commandEventResp {
	resp := commandEventResp{
		ID:        ev.ID,
		Title:     ev.Title,
		StartTime: ev.StartTime.Format(response.DateTimeFormat),
		Location:  ev.Location,
	}
	if ev.EndTime != nil {
		end := ev.EndTime.Format(response.DateTimeFormat)
		resp.EndTime = &end
	}
	return resp
}

type executeCommandResp struct {
	Success     bool               `json:"success"`
	ActionTaken string             `json:"action_taken,omitempty"`
	Message     string             `json:"message"`
	Event       *commandEventResp  `json:"event,omitempty"`
	Events      []commandEventResp `json:"events,omitempty"`
	Count       int                `json:"count,omitempty"`
}

func (h *handler) newExecuteCommandResp(out assistant.ExecuteCommandOutput) executeCommandResp {
	resp := executeCommandResp{
		Success:     out.Success,
		ActionTaken: string(out.ActionTaken),
		Message:     out.Message,
		Count:       len(out.Events),
	}
	if out.Event != nil {
		ev := newCommandEventResp(*out.Event)
		resp.Event = &ev
	}
	for _, ev := range out.Events {
		resp.Events = append(resp.Events, newCommandEventResp(ev))
	}
	return resp
}

type turnResp struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(out assistant.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{
			Role:      string(t.Role),
			Content:   t.Content,
			Timestamp: t.Timestamp.Format(response.DateTimeFormat),
		}
	}
	return historyResp{SessionID: out.SessionID, Turns: turns}
}
