package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/response"
)

// ExecuteCommand godoc
// @Summary     Execute a natural-language command
// @Description Interprets the text, resolves referenced events, applies the action, and replies conversationally. Failed commands return success=false with an explanatory message, not an HTTP error.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body executeCommandReq true "Command text and session"
// @Success     200 {object} executeCommandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/execute-command [POST]
func (h *handler) ExecuteCommand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExecuteCommand(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.ExecuteCommand: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OKWithMessage(c, output.Message, h.newExecuteCommandResp(output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the recorded conversation turns for a session, oldest first.
// @Tags        Assistant
// @Produce     json
// @Param       session_id query string true "Session identifier"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.History: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear session history
// @Description Empties the session's conversation history. Clearing an unknown session succeeds.
// @Tags        Assistant
// @Produce     json
// @Param       session_id query string true "Session identifier"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ClearHistory(ctx, req.SessionID); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.ClearHistory: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}
