package localstore

import (
	"context"
	"sync"

	"pet-care-companion/internal/domain/notifications"
)

type notificationRepo struct {
	mu    sync.RWMutex
	store *Store
	list  []notifications.Notification
}

// NewNotificationRepo carga el snapshot de notificaciones. Un snapshot
// ausente o corrupto deja la lista vacía: las derivadas se regeneran de los
// eventos en la primera lectura y solo se pierden flags de leído.
func NewNotificationRepo(store *Store) notifications.Repository {
	list, _ := readList[notifications.Notification](store, keyNotifications)
	return &notificationRepo{store: store, list: list}
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
	return writeList(r.store, keyNotifications, r.list)
}
