package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("notification not found")
)

type Service struct {
	eventsSvc *events.Service
	petsSvc   *pets.Service
	repo      Repository
	log       logger.Logger
	now       func() time.Time
}

func NewService(eventsSvc *events.Service, petsSvc *pets.Service, repo Repository, log logger.Logger) *Service {
	return &Service{
		eventsSvc: eventsSvc,
		petsSvc:   petsSvc,
		repo:      repo,
		log:       log,
		now:       time.Now,
	}
}

// Refresh regenera las notificaciones derivadas, las mezcla con lo persistido
// (conservando Read y las personalizadas) y guarda el resultado.
func (s *Service) Refresh(ctx context.Context) ([]Notification, error) {
	evts, err := s.eventsSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	petList, err := s.petsSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	fresh := GenerateFromEvents(evts, petList, s.now(), s.log)

	persisted, err := s.repo.Load(ctx)
	if err != nil {
		// Estado guardado ilegible: se sigue solo con lo derivado.
		if s.log != nil {
			s.log.Warn("stored notifications unreadable, regenerating from events", map[string]any{"err": err.Error()})
		}
		persisted = nil
	}

	merged := Merge(fresh, persisted)
	if err := s.repo.Save(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// List devuelve las notificaciones actualizadas, filtradas por mascota si
// petID != 0.
func (s *Service) List(ctx context.Context, petID int64) ([]Notification, error) {
	merged, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	if petID == 0 {
		return merged, nil
	}
	out := make([]Notification, 0, len(merged))
	for _, n := range merged {
		if n.PetID == petID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	merged, err := s.Refresh(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range merged {
		if merged[i].ID == id {
			merged[i].Read = true
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	return s.repo.Save(ctx, merged)
}

// MarkAllRead marca todas como leídas; con petID != 0 solo las de esa mascota.
func (s *Service) MarkAllRead(ctx context.Context, petID int64) error {
	merged, err := s.Refresh(ctx)
	if err != nil {
		return err
	}
	for i := range merged {
		if petID == 0 || merged[i].PetID == petID {
			merged[i].Read = true
		}
	}
	return s.repo.Save(ctx, merged)
}

type CustomInput struct {
	PetID    int64
	Title    string
	Message  string
	Type     Type
	Priority Priority
}

// AddCustom crea una notificación manual. Sobrevive a las regeneraciones
// porque no tiene EventID.
func (s *Service) AddCustom(ctx context.Context, in CustomInput) (Notification, error) {
	if in.PetID == 0 || strings.TrimSpace(in.Title) == "" {
		return Notification{}, ErrInvalidInput
	}
	typ := in.Type
	if typ == "" {
		typ = TypeGeneral
	}
	if !typ.Valid() {
		return Notification{}, ErrInvalidInput
	}
	prio := in.Priority
	if prio == "" {
		prio = PriorityMedium
	}

	n := Notification{
		ID:       "custom-" + uuid.NewString(),
		PetID:    in.PetID,
		Title:    strings.TrimSpace(in.Title),
		Message:  strings.TrimSpace(in.Message),
		Type:     typ,
		Time:     s.now(),
		Priority: prio,
	}

	merged, err := s.Refresh(ctx)
	if err != nil {
		return Notification{}, err
	}
	merged = append([]Notification{n}, merged...)
	if err := s.repo.Save(ctx, merged); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	merged, err := s.Refresh(ctx)
	if err != nil {
		return err
	}

	out := merged[:0]
	found := false
	for _, n := range merged {
		if n.ID == id {
			found = true
			continue
		}
		out = append(out, n)
	}
	if !found {
		return ErrNotFound
	}
	return s.repo.Save(ctx, out)
}

// UnreadCount cuenta las no leídas; con petID != 0 solo las de esa mascota.
func (s *Service) UnreadCount(ctx context.Context, petID int64) (int, error) {
	merged, err := s.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range merged {
		if n.Read {
			continue
		}
		if petID != 0 && n.PetID != petID {
			continue
		}
		count++
	}
	return count, nil
}
