package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/assistant/resolver"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// ExecuteCommand drives one utterance through interpret → resolve →
// execute. It always returns a definite outcome envelope; failures become
// Success=false with a human-readable message, never a raw error. Both
// the user turn and the outcome turn are recorded after the action
// settles, including on failure, so follow-ups can refer back to it.
func (uc *implUseCase) ExecuteCommand(ctx context.Context, input assistant.ExecuteCommandInput) (assistant.ExecuteCommandOutput, error) {
	history := uc.sessions.ExportForContext(input.SessionID, uc.contextTurns)

	// Calendar names give the model something concrete to bind
	// calendar_name against. Best effort only.
	var calendarNames []string
	if out, err := uc.calendars.ListCalendars(ctx); err == nil {
		calendarNames = out.Calendars
	}

	cmd, err := uc.interp.Interpret(ctx, input.Text, uc.nowFn(), history, calendarNames)
	if err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.ExecuteCommand: interpret failed: %v", err)
		out := fail(interpretFailureMessage(err))
		uc.record(input, out)
		return out, nil
	}

	var out assistant.ExecuteCommandOutput
	switch cmd.Action {
	case assistant.ActionCreateEvent:
		out = uc.executeCreate(ctx, cmd)
	case assistant.ActionListEvents, assistant.ActionQuery:
		out = uc.executeList(ctx, cmd)
	case assistant.ActionDeleteEvent:
		out = uc.executeDelete(ctx, cmd)
	case assistant.ActionUpdateEvent:
		out = uc.executeUpdate(ctx, cmd)
	}
	out.ActionTaken = cmd.Action

	uc.record(input, out)
	return out, nil
}

func (uc *implUseCase) executeCreate(ctx context.Context, cmd assistant.ParsedCommand) assistant.ExecuteCommandOutput {
	if cmd.Params.Title == "" {
		return fail(msgMissingTitle)
	}
	if cmd.Params.StartTime == "" {
		return fail(msgMissingStartTime)
	}

	start, err := uc.dateMath.ParseDateTime(cmd.Params.StartTime)
	if err != nil {
		return fail(msgMalformedTime)
	}

	in := calendar.CreateEventInput{
		Title:        cmd.Params.Title,
		StartTime:    start,
		Location:     cmd.Params.Location,
		Notes:        cmd.Params.Description,
		CalendarName: cmd.Params.CalendarName,
	}
	if cmd.Params.EndTime != "" {
		end, err := uc.dateMath.ParseDateTime(cmd.Params.EndTime)
		if err != nil {
			return fail(msgMalformedTime)
		}
		in.EndTime = &end
	}

	created, err := uc.calendars.CreateEvent(ctx, in)
	if err != nil {
		return fail(storeFailureMessage(err))
	}

	return assistant.ExecuteCommandOutput{
		Success: true,
		Message: fmt.Sprintf(msgCreated, created.Event.Title),
		Event:   &created.Event,
	}
}

func (uc *implUseCase) executeList(ctx context.Context, cmd assistant.ParsedCommand) assistant.ExecuteCommandOutput {
	in := calendar.ListEventsInput{CalendarName: cmd.Params.CalendarName}
	if cmd.Params.StartDate != "" {
		t, err := uc.dateMath.ParseDateTime(cmd.Params.StartDate)
		if err != nil {
			return fail(msgMalformedTime)
		}
		in.Start = &t
	}
	if cmd.Params.EndDate != "" {
		t, err := uc.dateMath.ParseDateTime(cmd.Params.EndDate)
		if err != nil {
			return fail(msgMalformedTime)
		}
		in.End = &t
	}

	out, err := uc.calendars.ListEvents(ctx, in)
	if err != nil {
		return fail(storeFailureMessage(err))
	}

	return assistant.ExecuteCommandOutput{
		Success: true,
		Message: uc.interp.SummarizeEvents(ctx, out.Events),
		Events:  out.Events,
	}
}

func (uc *implUseCase) executeDelete(ctx context.Context, cmd assistant.ParsedCommand) assistant.ExecuteCommandOutput {
	id := cmd.Params.EventID
	title := cmd.Params.Title

	var matched *model.CalendarEvent
	if id == "" {
		if title == "" {
			return fail(msgNeedDeleteTarget)
		}
		m, out := uc.resolveOne(ctx, title, uc.hint(cmd.Params.StartTime, cmd.Params.StartDate))
		if m == nil {
			return out
		}
		matched = m
		id = m.ID
		title = m.Title
	}

	if err := uc.calendars.DeleteEvent(ctx, id); err != nil {
		return fail(storeFailureMessage(err))
	}

	if title == "" {
		title = id
	}
	return assistant.ExecuteCommandOutput{
		Success: true,
		Message: fmt.Sprintf(msgDeleted, title),
		Event:   matched,
	}
}

func (uc *implUseCase) executeUpdate(ctx context.Context, cmd assistant.ParsedCommand) assistant.ExecuteCommandOutput {
	id := cmd.Params.EventID

	if id == "" {
		if cmd.Params.SearchTitle == "" {
			return fail(msgNeedUpdateTarget)
		}
		// search_date narrows to the day the original event lives on;
		// start_time here is the NEW time and must not become a hint.
		m, out := uc.resolveOne(ctx, cmd.Params.SearchTitle, uc.hint("", firstNonEmpty(cmd.Params.SearchDate, cmd.Params.StartDate)))
		if m == nil {
			return out
		}
		id = m.ID
	}

	fields := model.EventFields{}
	if cmd.Params.Title != "" && cmd.Params.Title != cmd.Params.SearchTitle {
		fields.Title = &cmd.Params.Title
	}
	if cmd.Params.StartTime != "" {
		t, err := uc.dateMath.ParseDateTime(cmd.Params.StartTime)
		if err != nil {
			return fail(msgMalformedTime)
		}
		fields.StartTime = &t
	}
	if cmd.Params.EndTime != "" {
		t, err := uc.dateMath.ParseDateTime(cmd.Params.EndTime)
		if err != nil {
			return fail(msgMalformedTime)
		}
		fields.EndTime = &t
	}
	if cmd.Params.Location != "" {
		fields.Location = &cmd.Params.Location
	}
	if cmd.Params.Description != "" {
		fields.Notes = &cmd.Params.Description
	}
	if cmd.Params.CalendarName != "" {
		fields.CalendarName = &cmd.Params.CalendarName
	}

	updated, err := uc.calendars.UpdateEvent(ctx, calendar.UpdateEventInput{ID: id, Fields: fields})
	if err != nil {
		return fail(storeFailureMessage(err))
	}

	return assistant.ExecuteCommandOutput{
		Success: true,
		Message: fmt.Sprintf(msgUpdated, updated.Event.Title),
		Event:   &updated.Event,
	}
}

// resolveOne runs entity resolution and folds the 0/many cardinalities
// into outcome envelopes; a single match is returned for execution.
func (uc *implUseCase) resolveOne(ctx context.Context, fragment string, hint resolver.Hint) (*model.CalendarEvent, assistant.ExecuteCommandOutput) {
	res, err := uc.resolve.Resolve(ctx, fragment, hint)
	if err != nil {
		return nil, fail(storeFailureMessage(err))
	}

	switch len(res.Matches) {
	case 0:
		return nil, fail(fmt.Sprintf(msgNoMatch, fragment))
	case 1:
		m := res.Matches[0]
		return &m, assistant.ExecuteCommandOutput{}
	default:
		out := fail(fmt.Sprintf(msgAmbiguous, len(res.Matches)))
		out.Events = res.Matches
		return nil, out
	}
}

// hint builds the resolver hint from extracted time slots: a concrete
// time beats a bare date.
func (uc *implUseCase) hint(startTime, startDate string) resolver.Hint {
	if startTime != "" {
		if t, err := uc.dateMath.ParseDateTime(startTime); err == nil {
			return resolver.Hint{Instant: &t}
		}
	}
	if startDate != "" {
		if t, err := uc.dateMath.ParseDate(startDate); err == nil {
			return resolver.Hint{Date: &t}
		}
	}
	return resolver.Hint{}
}

func (uc *implUseCase) record(input assistant.ExecuteCommandInput, out assistant.ExecuteCommandOutput) {
	uc.sessions.AppendExchange(input.SessionID, input.Text, out.Message)
}

func fail(message string) assistant.ExecuteCommandOutput {
	return assistant.ExecuteCommandOutput{Success: false, Message: message}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
