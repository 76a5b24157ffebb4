package notifications

import "pet-care-companion/internal/domain/events"

type Type string

const (
	TypeReminder    Type = "reminder"
	TypeAppointment Type = "appointment"
	TypeMedication  Type = "medication"
	TypeVaccination Type = "vaccination"
	TypeExam        Type = "exam"
	TypeGeneral     Type = "general"
	TypeEmergency   Type = "emergency"
)

func (t Type) Valid() bool {
	switch t {
	case TypeReminder, TypeAppointment, TypeMedication, TypeVaccination, TypeExam, TypeGeneral, TypeEmergency:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// mapEventType traduce el tipo de evento de calendario al tipo de
// notificación. Las notificaciones de atraso no pasan por aquí: siempre son
// emergency.
func mapEventType(t events.EventType) Type {
	switch t {
	case events.TypeConsulta, events.TypeCirurgia:
		return TypeAppointment
	case events.TypeVacina:
		return TypeVaccination
	case events.TypeExame:
		return TypeExam
	case events.TypeRemedio, events.TypeVermifugo:
		return TypeMedication
	default:
		return TypeReminder
	}
}
