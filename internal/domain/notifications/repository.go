package notifications

import "context"

// Repository persiste la lista de notificaciones como snapshot completo. La
// lista derivada no es fuente de verdad (se regenera de los eventos); lo que
// importa conservar son los flags de leído y las personalizadas.
type Repository interface {
	Load(ctx context.Context) ([]Notification, error)
	Save(ctx context.Context, list []Notification) error
}
