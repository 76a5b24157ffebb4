package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"pet-care-companion/internal/domain/events"
)

type eventRepo struct {
	mu    sync.RWMutex
	byID  map[string]events.CalendarEvent
	order []string
}

// NewEventRepo crea el repositorio en memoria sembrado con la agenda de
// demostración, con fechas relativas a now.
func NewEventRepo(now time.Time) events.Repository {
	r := &eventRepo{byID: make(map[string]events.CalendarEvent)}
	for _, e := range events.Seed(now) {
		r.byID[e.ID] = e
		r.order = append(r.order, e.ID)
	}
	return r
}

func (r *eventRepo) Create(ctx context.Context, e events.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.byID[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *eventRepo) Update(ctx context.Context, e events.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.CalendarEvent{}, ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) List(ctx context.Context) ([]events.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.CalendarEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
