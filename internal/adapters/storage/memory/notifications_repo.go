package memory

import (
	"context"
	"sync"

	"pet-care-companion/internal/domain/notifications"
)

type notificationRepo struct {
	mu   sync.RWMutex
	list []notifications.Notification
}

// NewNotificationRepo crea el repositorio en memoria. Arranca vacío: la lista
// se regenera a partir de los eventos en la primera lectura.
func NewNotificationRepo() notifications.Repository {
	return &notificationRepo{}
}

func (r *notificationRepo) Load(ctx context.Context) ([]notifications.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]notifications.Notification(nil), r.list...), nil
}

func (r *notificationRepo) Save(ctx context.Context, list []notifications.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.list = append([]notifications.Notification(nil), list...)
	return nil
}
