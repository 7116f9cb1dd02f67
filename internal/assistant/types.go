package assistant

import (
	"calendar-assistant/internal/model"
)

// Action is the operation the language model extracted from user text.
type Action string

const (
	ActionCreateEvent Action = "create_event"
	ActionListEvents  Action = "list_events"
	ActionUpdateEvent Action = "update_event"
	ActionDeleteEvent Action = "delete_event"
	ActionQuery       Action = "query"
)

// KnownAction reports whether the model returned one of the five actions
// this service executes. Anything else is rejected before any remote call.
func KnownAction(a Action) bool {
	switch a {
	case ActionCreateEvent, ActionListEvents, ActionUpdateEvent, ActionDeleteEvent, ActionQuery:
		return true
	}
	return false
}

// CommandParams carries the raw extracted slots. All fields are optional
// strings exactly as the model emitted them; validation and parsing into
// time.Time happens in the interpreter.
type CommandParams struct {
	Title        string `json:"title"`
	SearchTitle  string `json:"search_title"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	SearchDate   string `json:"search_date"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	CalendarName string `json:"calendar_name"`
	EventID      string `json:"event_id"`
}

// ParsedCommand is the structured result of interpreting one user input.
// It lives only for the duration of the request.
type ParsedCommand struct {
	Action      Action        `json:"action"`
	Params      CommandParams `json:"params"`
	Confidence  float64       `json:"confidence"`
	Explanation string        `json:"explanation"`
}

// --- UseCase Inputs/Outputs ---

type ExecuteCommandInput struct {
	SessionID string
	Text      string
}

// ExecuteCommandOutput is always returned with a definite outcome: even
// failed commands produce Success=false plus a human-readable Message,
// never a bare error, so the conversational surface stays conversational.
type ExecuteCommandOutput struct {
	Success     bool
	ActionTaken Action
	Message     string
	Events      []model.CalendarEvent // query results or disambiguation candidates
	Event       *model.CalendarEvent  // the event acted on, when applicable
}

type HistoryOutput struct {
	SessionID string
	Turns     []model.Turn
}
