package notifications

import (
	"time"

	"pet-care-companion/internal/domain/events"
)

// Notification es un aviso derivado de un evento de calendario, o creado a
// mano por el usuario (EventID vacío). Las derivadas se regeneran en cada
// lectura; solo el flag Read sobrevive entre regeneraciones gracias al ID
// determinista (prefijo de bucket + id del evento).
type Notification struct {
	ID             string           `json:"id"`
	PetID          int64            `json:"petId"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Type           Type             `json:"type"`
	EventType      events.EventType `json:"eventType,omitempty"`
	EventID        string           `json:"eventId,omitempty"`
	Time           time.Time        `json:"time"`
	Read           bool             `json:"read"`
	Priority       Priority         `json:"priority"`
	ActionRequired bool             `json:"actionRequired,omitempty"`
}

// IsCustom indica si la notificación fue creada por el usuario y no derivada
// de un evento.
func (n Notification) IsCustom() bool {
	return n.EventID == ""
}
