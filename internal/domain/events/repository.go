package events

import "context"

// Repository persiste la lista de eventos. Las implementaciones escriben el
// snapshot completo tras cada mutación (patrón replace-the-whole-list del
// almacenamiento local).
type Repository interface {
	Create(ctx context.Context, e CalendarEvent) error
	Update(ctx context.Context, e CalendarEvent) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (CalendarEvent, error)
	List(ctx context.Context) ([]CalendarEvent, error)
}
