package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-companion/internal/adapters/storage/memory"
	"pet-care-companion/internal/domain/events"
)

func TestCreate_Validation(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	svc := events.NewService(memory.NewEventRepo(now))
	ctx := context.Background()

	valid := events.CreateInput{
		PetID: 1,
		Title: "Consulta",
		Type:  events.TypeConsulta,
		Date:  now.AddDate(0, 0, 1),
		Time:  "10:00",
	}

	cases := []func(events.CreateInput) events.CreateInput{
		func(in events.CreateInput) events.CreateInput { in.PetID = 0; return in },
		func(in events.CreateInput) events.CreateInput { in.Title = "  "; return in },
		func(in events.CreateInput) events.CreateInput { in.Type = "banho"; return in },
		func(in events.CreateInput) events.CreateInput { in.Date = time.Time{}; return in },
		func(in events.CreateInput) events.CreateInput { in.Time = "25:99"; return in },
		func(in events.CreateInput) events.CreateInput { in.Time = "8h"; return in },
	}
	for i, mutate := range cases {
		if _, err := svc.Create(ctx, mutate(valid)); !errors.Is(err, events.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	e, err := svc.Create(ctx, valid)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("created event has no id")
	}
}

func TestToggleCompleted(t *testing.T) {
	// Semilla relativa al reloj real: el evento 4 vence hoy
	now := time.Now()
	svc := events.NewService(memory.NewEventRepo(now))
	ctx := context.Background()

	e, err := svc.ToggleCompleted(ctx, "4")
	if err != nil {
		t.Fatalf("ToggleCompleted: %v", err)
	}
	if !e.Completed {
		t.Fatalf("expected completed after toggle")
	}

	// Completado hoy: desaparece de los recordatorios del día
	due, err := svc.ListDueReminders(ctx)
	if err != nil {
		t.Fatalf("ListDueReminders: %v", err)
	}
	for _, d := range due {
		if d.ID == "4" {
			t.Fatalf("completed event should not be due")
		}
	}

	e, err = svc.ToggleCompleted(ctx, "4")
	if err != nil {
		t.Fatalf("ToggleCompleted: %v", err)
	}
	if e.Completed {
		t.Fatalf("expected pending after second toggle")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	svc := events.NewService(memory.NewEventRepo(now))

	_, err := svc.Update(context.Background(), "nope", events.CreateInput{
		PetID: 1,
		Title: "Consulta",
		Type:  events.TypeConsulta,
		Date:  now,
		Time:  "10:00",
	})
	if err == nil {
		t.Fatalf("expected an error for an unknown event")
	}
}
