package events

import "time"

// CalendarEvent es un evento del calendario de una mascota. Date marca el día
// del evento; la hora del día vive aparte en Time ("HH:MM") porque el
// calendario compara fechas truncadas a día, nunca timestamps exactos.
type CalendarEvent struct {
	ID        string    `json:"id"`
	PetID     int64     `json:"petId"`
	Title     string    `json:"title"`
	Type      EventType `json:"type"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Reminder  bool      `json:"reminder"`
	Notes     string    `json:"notes,omitempty"`
	Completed bool      `json:"completed"`
}
