package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PetID    int64
	Title    string
	Type     EventType
	Date     time.Time
	Time     string
	Reminder bool
	Notes    string
}

func validateInput(in CreateInput) error {
	if in.PetID == 0 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidInput
	}
	if !in.Type.Valid() {
		return ErrInvalidInput
	}
	if in.Date.IsZero() {
		return ErrInvalidInput
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (CalendarEvent, error) {
	if err := validateInput(in); err != nil {
		return CalendarEvent{}, err
	}

	e := CalendarEvent{
		ID:       uuid.NewString(),
		PetID:    in.PetID,
		Title:    strings.TrimSpace(in.Title),
		Type:     in.Type,
		Date:     in.Date,
		Time:     in.Time,
		Reminder: in.Reminder,
		Notes:    strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return CalendarEvent{}, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, in CreateInput) (CalendarEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CalendarEvent{}, ErrInvalidInput
	}
	if err := validateInput(in); err != nil {
		return CalendarEvent{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CalendarEvent{}, err
	}

	existing.PetID = in.PetID
	existing.Title = strings.TrimSpace(in.Title)
	existing.Type = in.Type
	existing.Date = in.Date
	existing.Time = in.Time
	existing.Reminder = in.Reminder
	existing.Notes = strings.TrimSpace(in.Notes)

	if err := s.repo.Update(ctx, existing); err != nil {
		return CalendarEvent{}, err
	}
	return existing, nil
}

// ToggleCompleted invierte el estado de completado del evento.
func (s *Service) ToggleCompleted(ctx context.Context, id string) (CalendarEvent, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CalendarEvent{}, err
	}
	e.Completed = !e.Completed
	if err := s.repo.Update(ctx, e); err != nil {
		return CalendarEvent{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (CalendarEvent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]CalendarEvent, error) {
	return s.repo.List(ctx)
}

// ListForDate devuelve los eventos de un día (petID 0 = todas las mascotas).
func (s *Service) ListForDate(ctx context.Context, date time.Time, petID int64) ([]CalendarEvent, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ForDate(all, date, petID), nil
}

// ListUpcoming devuelve los próximos eventos no completados de una mascota.
func (s *Service) ListUpcoming(ctx context.Context, petID int64, daysAhead int) ([]CalendarEvent, error) {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return UpcomingForPet(all, petID, daysAhead, s.now()), nil
}

// ListGrouped agrupa por mes/año los eventos, con filtros opcionales por
// mascota y tipo.
func (s *Service) ListGrouped(ctx context.Context, petID int64, typ EventType) ([]MonthGroup, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]CalendarEvent, 0, len(all))
	for _, e := range all {
		if petID != 0 && e.PetID != petID {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		filtered = append(filtered, e)
	}
	return GroupByMonth(filtered), nil
}

// ListDueReminders devuelve los eventos con recordatorio que vencen hoy.
func (s *Service) ListDueReminders(ctx context.Context) ([]CalendarEvent, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return DueToday(all, s.now()), nil
}
