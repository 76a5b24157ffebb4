package reminder

import (
	"context"
	"fmt"
	"time"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/logger"
)

// Reminder agrupa los eventos con recordatorio que vencen hoy para una misma
// mascota.
type Reminder struct {
	PetID   int64
	PetName string
	Events  []events.CalendarEvent
}

// Sink recibe los recordatorios del chequeo periódico.
type Sink interface {
	Notify(ctx context.Context, r Reminder)
}

// LogSink escribe los recordatorios en el log, una línea por mascota.
type LogSink struct {
	Log logger.Logger
}

func (s LogSink) Notify(ctx context.Context, r Reminder) {
	first := r.Events[0]
	fields := map[string]any{
		"pet_id": r.PetID,
		"pet":    r.PetName,
	}
	if extra := len(r.Events) - 1; extra > 0 {
		fields["more"] = extra
	}
	s.Log.Info(fmt.Sprintf("Lembrete: %s hoje às %s", first.Title, first.Time), fields)
}

// Scheduler revisa cada hora los recordatorios que vencen hoy y los entrega
// al sink agrupados por mascota.
type Scheduler struct {
	events   *events.Service
	pets     *pets.Service
	sink     Sink
	interval time.Duration
	log      logger.Logger
}

func NewScheduler(eventsSvc *events.Service, petsSvc *pets.Service, sink Sink, log logger.Logger) *Scheduler {
	return &Scheduler{
		events:   eventsSvc,
		pets:     petsSvc,
		sink:     sink,
		interval: time.Hour,
		log:      log,
	}
}

// Run hace un chequeo inmediato y después uno por intervalo hasta que el
// contexto se cancele.
func (s *Scheduler) Run(ctx context.Context) {
	s.check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *Scheduler) check(ctx context.Context) {
	due, err := s.events.ListDueReminders(ctx)
	if err != nil {
		s.log.Warn("reminder check failed", map[string]any{"err": err.Error()})
		return
	}
	if len(due) == 0 {
		return
	}

	byPet := make(map[int64][]events.CalendarEvent)
	var order []int64
	for _, e := range due {
		if _, seen := byPet[e.PetID]; !seen {
			order = append(order, e.PetID)
		}
		byPet[e.PetID] = append(byPet[e.PetID], e)
	}

	for _, petID := range order {
		name := ""
		if p, err := s.pets.GetByID(ctx, petID); err == nil {
			name = p.Name
		}
		s.sink.Notify(ctx, Reminder{PetID: petID, PetName: name, Events: byPet[petID]})
	}
}
