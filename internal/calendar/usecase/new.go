package usecase

import (
	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/pkg/datemath"
	pkgLog "calendar-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	store    repository.Store
	dateMath *datemath.Parser
}

// New creates the calendar use case. The store must already be wrapped by
// repository.NewCompensated — this layer assumes correct range semantics.
func New(l pkgLog.Logger, store repository.Store, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		store:    store,
		dateMath: dateMath,
	}
}
