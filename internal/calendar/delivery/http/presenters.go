package http

import (
	"errors"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/response"
)

var (
	errMissingTitle = errors.New("title is required")
	errMissingStart = errors.New("start_time is required")
	errBadTime      = errors.New("time must be RFC 3339 or YYYY-MM-DD[THH:MM:SS]")
)

// --- Request DTOs ---

type listReq struct {
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	CalendarName string `form:"calendar_name"`
}

func (h *handler) toListInput(r listReq) (calendar.ListEventsInput, error) {
	in := calendar.ListEventsInput{CalendarName: r.CalendarName}
	if r.StartDate != "" {
		t, err := h.dateMath.ParseDateTime(r.StartDate)
		if err != nil {
			return in, errBadTime
		}
		in.Start = &t
	}
	if r.EndDate != "" {
		t, err := h.dateMath.ParseDateTime(r.EndDate)
		if err != nil {
			return in, errBadTime
		}
		in.End = &t
	}
	return in, nil
}

// ---

type createReq struct {
	Title        string `json:"title"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Location     string `json:"location"`
	Notes        string `json:"notes"`
	CalendarName string `json:"calendar_name"`
}

func (r createReq) validate() error {
	if r.Title == "" {
		return errMissingTitle
	}
	if r.StartTime == "" {
		return errMissingStart
	}
	return nil
}

func (h *handler) toCreateInput(r createReq) (calendar.CreateEventInput, error) {
	start, err := h.dateMath.ParseDateTime(r.StartTime)
	if err != nil {
		return calendar.CreateEventInput{}, errBadTime
	}
	in := calendar.CreateEventInput{
		Title:        r.Title,
		StartTime:    start,
		Location:     r.Location,
		Notes:        r.Notes,
		CalendarName: r.CalendarName,
	}
	if r.EndTime != "" {
		end, err := h.dateMath.ParseDateTime(r.EndTime)
		if err != nil {
			return calendar.CreateEventInput{}, errBadTime
		}
		in.EndTime = &end
	}
	return in, nil
}

// ---

type updateReq struct {
	ID           string  `json:"-"` // populated from URI param
	Title        *string `json:"title"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Location     *string `json:"location"`
	Notes        *string `json:"notes"`
	CalendarName *string `json:"calendar_name"`
}

func (h *handler) toUpdateInput(r updateReq) (calendar.UpdateEventInput, error) {
	fields := model.EventFields{
		Title:        r.Title,
		Location:     r.Location,
		Notes:        r.Notes,
		CalendarName: r.CalendarName,
	}
	if r.StartTime != nil {
		t, err := h.dateMath.ParseDateTime(*r.StartTime)
		if err != nil {
			return calendar.UpdateEventInput{}, errBadTime
		}
		fields.StartTime = &t
	}
	if r.EndTime != nil {
		t, err := h.dateMath.ParseDateTime(*r.EndTime)
		if err != nil {
			return calendar.UpdateEventInput{}, errBadTime
		}
		fields.EndTime = &t
	}
	return calendar.UpdateEventInput{ID: r.ID, Fields: fields}, nil
}

// --- Response DTOs ---

type eventResp struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	StartTime    string  `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Location     string  `json:"location,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	CalendarName string  `json:"calendar_name,omitempty"`
	AllDay       bool    `json:"all_day"`
	URL          string  `json:"url,omitempty"`
}

func newEventResp(ev model.CalendarEvent) eventResp {
	resp := eventResp{
		ID:           ev.ID,
		Title:        ev.Title,
		StartTime:    ev.StartTime.Format(response.DateTimeFormat),
		Location:     ev.Location,
		Notes:        ev.Notes,
		CalendarName: ev.CalendarName,
		AllDay:       ev.AllDay,
		URL:          ev.URL,
	}
	if ev.EndTime != nil {
		end := ev.EndTime.Format(response.DateTimeFormat)
		resp.EndTime = &end
	}
	return resp
}

type listResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(out calendar.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listResp{Events: events, Count: out.Count}
}

type calendarsResp struct {
	Calendars []string `json:"calendars"`
}

func (h *handler) newCalendarsResp(out calendar.ListCalendarsOutput) calendarsResp {
	return calendarsResp{Calendars: out.Calendars}
}

type createResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out calendar.CreateEventOutput) createResp {
	return createResp{Event: newEventResp(out.Event)}
}

type updateResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newUpdateResp(out calendar.UpdateEventOutput) updateResp {
	return updateResp{Event: newEventResp(out.Event)}
}
