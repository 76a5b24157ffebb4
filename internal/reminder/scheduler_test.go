package reminder

import (
	"context"
	"testing"
	"time"

	"pet-care-companion/internal/adapters/storage/memory"
	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/logger"
)

type captureSink struct {
	got []Reminder
}

func (s *captureSink) Notify(_ context.Context, r Reminder) {
	s.got = append(s.got, r)
}

func TestCheck_GroupsDueRemindersByPet(t *testing.T) {
	now := time.Now()
	eventsSvc := events.NewService(memory.NewEventRepo(now))
	petsSvc := pets.NewService(memory.NewPetRepo())

	// Segundo recordatorio de Thor para hoy, para forzar la agrupación
	if _, err := eventsSvc.Create(context.Background(), events.CreateInput{
		PetID:    3,
		Title:    "Curativo",
		Type:     events.TypeRemedio,
		Date:     now,
		Time:     "18:00",
		Reminder: true,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sink := &captureSink{}
	sched := NewScheduler(eventsSvc, petsSvc, sink, logger.Nop())
	sched.check(context.Background())

	if len(sink.got) != 1 {
		t.Fatalf("expected one grouped reminder, got %d", len(sink.got))
	}
	r := sink.got[0]
	if r.PetID != 3 || r.PetName != "Thor" {
		t.Fatalf("unexpected reminder %+v", r)
	}
	if len(r.Events) != 2 {
		t.Fatalf("expected both of Thor's events for today, got %d", len(r.Events))
	}
	if r.Events[0].ID != "4" {
		t.Fatalf("expected the seeded antibiotic first, got %s", r.Events[0].ID)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	now := time.Now()
	eventsSvc := events.NewService(memory.NewEventRepo(now))
	petsSvc := pets.NewService(memory.NewPetRepo())

	sink := &captureSink{}
	sched := NewScheduler(eventsSvc, petsSvc, sink, logger.Nop())
	sched.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduler did not stop after cancel")
	}
	if len(sink.got) < 2 {
		t.Fatalf("expected the immediate check plus ticks, got %d", len(sink.got))
	}
}
