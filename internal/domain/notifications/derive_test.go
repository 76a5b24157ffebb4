package notifications

import (
	"reflect"
	"testing"
	"time"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"
)

var testPets = []pets.Pet{
	{ID: 1, Name: "Bella"},
	{ID: 2, Name: "Dom"},
}

func findByID(t *testing.T, list []Notification, id string) Notification {
	t.Helper()
	for _, n := range list {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("notification %q not found in %d results", id, len(list))
	return Notification{}
}

func TestGenerateFromEvents_Buckets(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	evts := []events.CalendarEvent{
		{ID: "e1", PetID: 1, Title: "Vacina antirrábica", Type: events.TypeVacina, Date: now.AddDate(0, 0, -2), Time: "10:00"},
		{ID: "e2", PetID: 1, Title: "Consulta de rotina", Type: events.TypeConsulta, Date: now, Time: "14:00"},
		{ID: "e3", PetID: 2, Title: "Vermífugo", Type: events.TypeVermifugo, Date: now.AddDate(0, 0, 1), Time: "09:00", Notes: "Dar com comida"},
		{ID: "e4", PetID: 2, Title: "Exame de sangue", Type: events.TypeExame, Date: now.AddDate(0, 0, 5), Time: "08:00"},
		{ID: "e5", PetID: 1, Title: "Banho e tosa", Type: events.TypeConsulta, Date: now.AddDate(0, 0, 12), Time: "11:00"},
	}

	got := GenerateFromEvents(evts, testPets, now, nil)
	if len(got) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(got))
	}

	overdue := findByID(t, got, "overdue-e1")
	if overdue.Type != TypeEmergency || overdue.Priority != PriorityHigh || !overdue.ActionRequired {
		t.Fatalf("overdue bucket wrong: %+v", overdue)
	}
	if overdue.Title != "Vacinação atrasado" {
		t.Fatalf("unexpected overdue title %q", overdue.Title)
	}
	if overdue.Message != "Vacina antirrábica estava agendado para 26/08/2026 às 10:00" {
		t.Fatalf("unexpected overdue message %q", overdue.Message)
	}

	today := findByID(t, got, "today-e2")
	if today.Type != TypeAppointment || today.Priority != PriorityHigh || !today.ActionRequired {
		t.Fatalf("today bucket wrong: %+v", today)
	}
	if today.Title != "Consulta hoje - Bella" {
		t.Fatalf("unexpected today title %q", today.Title)
	}

	tomorrow := findByID(t, got, "tomorrow-e3")
	if tomorrow.Type != TypeMedication || tomorrow.Priority != PriorityMedium || tomorrow.ActionRequired {
		t.Fatalf("tomorrow bucket wrong: %+v", tomorrow)
	}
	// Las notas van después del punto final del mensaje, unidas con un solo
	// espacio; es deliberado que no haya otro separador.
	if tomorrow.Message != "Vermífugo agendado para amanhã às 09:00. Dar com comida" {
		t.Fatalf("unexpected tomorrow message %q", tomorrow.Message)
	}

	upcoming := findByID(t, got, "upcoming-e4")
	if upcoming.Type != TypeExam || upcoming.Priority != PriorityLow {
		t.Fatalf("upcoming bucket wrong: %+v", upcoming)
	}
	if upcoming.Title != "Exame em 5 dias - Dom" {
		t.Fatalf("unexpected upcoming title %q", upcoming.Title)
	}

	// e5 queda fuera de la ventana de 7 días
	for _, n := range got {
		if n.EventID == "e5" {
			t.Fatalf("event beyond the 7-day window produced %+v", n)
		}
	}
}

func TestGenerateFromEvents_CompletedProducesNothing(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	evts := []events.CalendarEvent{
		{ID: "e1", PetID: 1, Title: "Vacina", Type: events.TypeVacina, Date: now.AddDate(0, 0, -2), Time: "10:00", Completed: true},
		{ID: "e2", PetID: 1, Title: "Consulta", Type: events.TypeConsulta, Date: now, Time: "14:00", Completed: true},
	}

	got := GenerateFromEvents(evts, testPets, now, nil)
	if len(got) != 0 {
		t.Fatalf("completed events should not notify, got %+v", got)
	}
}

func TestGenerateFromEvents_UnknownPetSkipped(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	evts := []events.CalendarEvent{
		{ID: "e1", PetID: 99, Title: "Consulta", Type: events.TypeConsulta, Date: now, Time: "14:00"},
		{ID: "e2", PetID: 1, Title: "Consulta", Type: events.TypeConsulta, Date: now, Time: "15:00"},
	}

	got := GenerateFromEvents(evts, testPets, now, nil)
	if len(got) != 1 || got[0].ID != "today-e2" {
		t.Fatalf("expected only today-e2, got %+v", got)
	}
}

func TestGenerateFromEvents_DaysUntilAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// El horario de verano arranca el 08/03/2026: la semana tiene un día de
	// 23 horas, así que contar por duración daría 4 en vez de 5.
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	evts := []events.CalendarEvent{
		{ID: "e1", PetID: 1, Title: "Consulta de retorno", Type: events.TypeConsulta, Date: now.AddDate(0, 0, 5), Time: "09:00"},
	}

	got := GenerateFromEvents(evts, testPets, now, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	n := got[0]
	if n.ID != "upcoming-e1" {
		t.Fatalf("expected upcoming bucket, got %s", n.ID)
	}
	if n.Title != "Consulta em 5 dias - Bella" {
		t.Fatalf("expected 5 calendar days, got title %q", n.Title)
	}
	if !n.Time.Equal(now.Add(-5 * time.Hour)) {
		t.Fatalf("expected synthetic time now-5h, got %v", n.Time)
	}
}

func TestGenerateFromEvents_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	evts := events.Seed(now)

	a := GenerateFromEvents(evts, testPets, now, nil)
	b := GenerateFromEvents(evts, testPets, now, nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("derivation should be deterministic for a fixed now")
	}
}

func TestGenerateFromEvents_SortedByTimeDesc(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	evts := []events.CalendarEvent{
		{ID: "e1", PetID: 1, Title: "A", Type: events.TypeConsulta, Date: now.AddDate(0, 0, 6), Time: "10:00"},
		{ID: "e2", PetID: 1, Title: "B", Type: events.TypeConsulta, Date: now, Time: "10:00"},
		{ID: "e3", PetID: 1, Title: "C", Type: events.TypeConsulta, Date: now.AddDate(0, 0, 1), Time: "10:00"},
	}

	got := GenerateFromEvents(evts, testPets, now, nil)
	for i := 1; i < len(got); i++ {
		if got[i].Time.After(got[i-1].Time) {
			t.Fatalf("notifications out of order at %d: %v after %v", i, got[i].Time, got[i-1].Time)
		}
	}
	if got[0].ID != "today-e2" {
		t.Fatalf("expected today-e2 first, got %s", got[0].ID)
	}
}
