package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/response"
)

// ListCalendars godoc
// @Summary     List calendars
// @Description Returns the names of all calendars reachable through the configured backend.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} calendarsResp
// @Failure     502 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/calendar/calendars [GET]
func (h *handler) ListCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCalendars(ctx)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.http.ListCalendars: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCalendarsResp(output))
}

// ListEvents godoc
// @Summary     List events
// @Description Returns events in the given time range, defaulting to the next 30 days.
// @Tags        Calendar
// @Produce     json
// @Param       start_date    query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param       end_date      query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Param       calendar_name query string false "Restrict to one calendar"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := h.toListInput(req)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.http.ListEvents: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// CreateEvent godoc
// @Summary     Create an event
// @Description Creates a calendar event. When end_time is omitted it defaults to one hour after start_time.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := h.toCreateInput(req)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvent(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.http.CreateEvent: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// UpdateEvent godoc
// @Summary     Update an event
// @Description Partial update: absent fields are left unchanged on the remote store.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/calendar/events/{id} [PUT]
func (h *handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := h.toUpdateInput(req)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateEvent(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.http.UpdateEvent: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// DeleteEvent godoc
// @Summary     Delete an event
// @Description Permanently removes the event with the given ID.
// @Tags        Calendar
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/calendar/events/{id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := eventIDParam(c)
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeleteEvent(ctx, id); err != nil {
		h.l.Errorf(ctx, "calendar.delivery.http.DeleteEvent: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
