package calendar

import "context"

// UseCase is the direct CRUD surface over the remote calendar store,
// bypassing natural language. The assistant executor shares the same
// repository underneath and therefore the same query semantics.
type UseCase interface {
	ListCalendars(ctx context.Context) (ListCalendarsOutput, error)
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	UpdateEvent(ctx context.Context, input UpdateEventInput) (UpdateEventOutput, error)
	DeleteEvent(ctx context.Context, id string) error
}
