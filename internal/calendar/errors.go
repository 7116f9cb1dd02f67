package calendar

import "errors"

// Store failures are classified here so callers can distinguish a
// permission problem (fix the calendar's sharing settings) from a
// connectivity problem (retry later). The distinction is user-visible.
var (
	ErrAuthFailed       = errors.New("calendar store authentication failed")
	ErrPermissionDenied = errors.New("calendar store denied the operation")
	ErrEventNotFound    = errors.New("event not found")
	ErrConnection       = errors.New("calendar store is unreachable")
	ErrInvalidTimeRange = errors.New("end time must not be before start time")
)
