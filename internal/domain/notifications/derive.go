package notifications

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/logger"
)

// GenerateFromEvents deriva la lista de notificaciones a partir de los
// eventos de calendario. Es determinista dado now: cada evento cae en a lo
// sumo un bucket (atrasado / hoy / mañana / próximos 7 días) y el ID se
// construye con el prefijo del bucket más el id del evento, así la misma
// notificación conserva su identidad entre regeneraciones.
//
// Un evento cuya mascota no existe se salta con un warn; nunca es fatal.
func GenerateFromEvents(evts []events.CalendarEvent, petList []pets.Pet, now time.Time, log logger.Logger) []Notification {
	byID := make(map[int64]pets.Pet, len(petList))
	for _, p := range petList {
		byID[p.ID] = p
	}

	today := events.TruncateToDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 7)

	out := make([]Notification, 0, len(evts))

	for _, e := range evts {
		pet, ok := byID[e.PetID]
		if !ok {
			if log != nil {
				log.Warn("notification skipped: pet not found", map[string]any{
					"event_id": e.ID,
					"pet_id":   e.PetID,
				})
			}
			continue
		}

		day := events.TruncateToDay(e.Date)

		switch {
		case day.Before(today) && !e.Completed:
			// Atrasado: siempre emergency, una hora después del evento para
			// que ordene detrás del evento en sí.
			out = append(out, Notification{
				ID:             "overdue-" + e.ID,
				PetID:          e.PetID,
				Title:          fmt.Sprintf("%s atrasado", e.Type.Label()),
				Message:        fmt.Sprintf("%s estava agendado para %s às %s", e.Title, formatDate(e.Date), e.Time),
				Type:           TypeEmergency,
				EventType:      e.Type,
				EventID:        e.ID,
				Time:           e.Date.Add(time.Hour),
				Priority:       PriorityHigh,
				ActionRequired: true,
			})

		case day.Equal(today) && !e.Completed:
			out = append(out, Notification{
				ID:             "today-" + e.ID,
				PetID:          e.PetID,
				Title:          fmt.Sprintf("%s hoje - %s", e.Type.Label(), pet.Name),
				Message:        withNotes(fmt.Sprintf("%s agendado para hoje às %s.", e.Title, e.Time), e.Notes),
				Type:           mapEventType(e.Type),
				EventType:      e.Type,
				EventID:        e.ID,
				Time:           now.Add(-1 * time.Hour),
				Priority:       PriorityHigh,
				ActionRequired: true,
			})

		case day.Equal(tomorrow) && !e.Completed:
			out = append(out, Notification{
				ID:        "tomorrow-" + e.ID,
				PetID:     e.PetID,
				Title:     fmt.Sprintf("%s amanhã - %s", e.Type.Label(), pet.Name),
				Message:   withNotes(fmt.Sprintf("%s agendado para amanhã às %s.", e.Title, e.Time), e.Notes),
				Type:      mapEventType(e.Type),
				EventType: e.Type,
				EventID:   e.ID,
				Time:      now.Add(-4 * time.Hour),
				Priority:  PriorityMedium,
			})

		case day.After(tomorrow) && !day.After(nextWeek) && !e.Completed:
			daysUntil := daysBetween(today, day)
			out = append(out, Notification{
				ID:        "upcoming-" + e.ID,
				PetID:     e.PetID,
				Title:     fmt.Sprintf("%s em %d dias - %s", e.Type.Label(), daysUntil, pet.Name),
				Message:   fmt.Sprintf("%s agendado para %s às %s", e.Title, formatDate(e.Date), e.Time),
				Type:      mapEventType(e.Type),
				EventType: e.Type,
				EventID:   e.ID,
				Time:      now.Add(-time.Duration(daysUntil) * time.Hour),
				Priority:  PriorityLow,
			})
		}
		// Fuera de [hoy, hoy+7] y no atrasado: sin notificación.
	}

	sortByTimeDesc(out)
	return out
}

// daysBetween cuenta días de calendario entre dos medianoches. No asume días
// de 24 horas: en zonas con horario de verano un día local puede durar 23h y
// la división por duración contaría uno de menos.
func daysBetween(from, to time.Time) int {
	n := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

func withNotes(msg, notes string) string {
	if strings.TrimSpace(notes) == "" {
		return msg
	}
	return msg + " " + notes
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func sortByTimeDesc(list []Notification) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Time.After(list[j].Time)
	})
}
