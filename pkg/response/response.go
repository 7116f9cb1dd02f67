package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// OKWithMessage sends 200 JSON with a human-readable message and data.
func OKWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a 400 response carrying the error's message.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	c.JSON(http.StatusBadRequest, Resp{
		Success: false,
		Message: err.Error(),
		Data:    data,
	})
}

// ErrorWithStatus sends an error response with an explicit status code.
func ErrorWithStatus(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Resp{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// InternalError sends 500 internal server error without leaking details.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Message: DefaultErrorMessage,
	})
}

// NotFound sends 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{
		Success: false,
		Message: message,
	})
}
