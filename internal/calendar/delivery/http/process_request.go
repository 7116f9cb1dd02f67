package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("event id is required")

// processListReq binds the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update event request body plus URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = eventIDParam(c)
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// eventIDParam extracts the event ID from a catch-all route param. The
// leading slash gin keeps on catch-all values is stripped so both plain
// IDs and CalDAV object paths round-trip.
func eventIDParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("id"), "/")
}
