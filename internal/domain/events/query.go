package events

import (
	"sort"
	"time"
)

// Las consultas sobre eventos son funciones puras sobre la lista completa:
// el calendario maneja decenas de registros, no hace falta más índice que eso.

// TruncateToDay recorta un timestamp al inicio del día en su zona local.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ForDate devuelve los eventos cuyo día coincide con date (ignorando la hora
// de ambos lados). petID == 0 significa todas las mascotas.
func ForDate(evts []CalendarEvent, date time.Time, petID int64) []CalendarEvent {
	target := TruncateToDay(date)
	out := make([]CalendarEvent, 0)
	for _, e := range evts {
		if !TruncateToDay(e.Date).Equal(target) {
			continue
		}
		if petID != 0 && e.PetID != petID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ForPet devuelve los eventos de una mascota.
func ForPet(evts []CalendarEvent, petID int64) []CalendarEvent {
	out := make([]CalendarEvent, 0)
	for _, e := range evts {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingForPet devuelve los eventos no completados de la mascota con fecha
// en [hoy, hoy+daysAhead] inclusive, ordenados ascendente por fecha.
func UpcomingForPet(evts []CalendarEvent, petID int64, daysAhead int, now time.Time) []CalendarEvent {
	today := TruncateToDay(now)
	limit := today.AddDate(0, 0, daysAhead)

	out := make([]CalendarEvent, 0)
	for _, e := range evts {
		day := TruncateToDay(e.Date)
		if e.PetID != petID || e.Completed {
			continue
		}
		if day.Before(today) || day.After(limit) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ForReminder devuelve los eventos con recordatorio activo, no completados,
// con fecha hoy o mañana (inclusive).
func ForReminder(evts []CalendarEvent, now time.Time) []CalendarEvent {
	today := TruncateToDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	out := make([]CalendarEvent, 0)
	for _, e := range evts {
		if !e.Reminder || e.Completed {
			continue
		}
		day := TruncateToDay(e.Date)
		if day.Before(today) || day.After(tomorrow) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DueToday filtra ForReminder a los eventos de hoy exactamente. El chequeo
// horario solo muestra los de hoy para no repetir antes de tiempo los de
// mañana.
func DueToday(evts []CalendarEvent, now time.Time) []CalendarEvent {
	today := TruncateToDay(now)
	out := make([]CalendarEvent, 0)
	for _, e := range ForReminder(evts, now) {
		if TruncateToDay(e.Date).Equal(today) {
			out = append(out, e)
		}
	}
	return out
}

// MonthGroup agrupa eventos por (mes, año).
type MonthGroup struct {
	Year   int             `json:"year"`
	Month  time.Month      `json:"month"`
	Events []CalendarEvent `json:"events"`
}

// GroupByMonth agrupa los eventos por mes/año. Los grupos salen ordenados
// ascendente por (año, mes) y dentro de cada grupo por fecha ascendente, para
// que el orden de render sea determinista.
func GroupByMonth(evts []CalendarEvent) []MonthGroup {
	type key struct {
		year  int
		month time.Month
	}

	grouped := make(map[key][]CalendarEvent)
	for _, e := range evts {
		k := key{year: e.Date.Year(), month: e.Date.Month()}
		grouped[k] = append(grouped[k], e)
	}

	keys := make([]key, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]MonthGroup, 0, len(keys))
	for _, k := range keys {
		group := grouped[k]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})
		out = append(out, MonthGroup{Year: k.year, Month: k.month, Events: group})
	}
	return out
}
