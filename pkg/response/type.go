package response

import "time"

const (
	// MessageSuccess is the default message for successful responses.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal details from the client.
	DefaultErrorMessage = "something went wrong, please try again later"

	// DateTimeFormat is the boundary encoding for timestamps.
	DateTimeFormat = time.RFC3339
)

// Resp is the standard JSON response body. Every endpoint returns this
// envelope; raw errors never reach the wire.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}
