package http

import (
	"github.com/gin-gonic/gin"
)

// processExecuteCommandReq binds and validates the execute-command body.
func (h *handler) processExecuteCommandReq(c *gin.Context) (executeCommandReq, error) {
	var req executeCommandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
