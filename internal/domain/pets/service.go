package pets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoPets       = errors.New("no pets registered")
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
	Name  string
	Image string
	Info  Info
}

// Create registra una mascota nueva. El ID es el timestamp de creación en
// milisegundos; si ya existe (dos altas en el mismo milisegundo) se incrementa
// hasta encontrar uno libre.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Info.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	id := s.now().UnixMilli()
	for {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			break
		}
		id++
	}

	p := Pet{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Image: strings.TrimSpace(in.Image),
		Info: Info{
			Species:  strings.TrimSpace(in.Info.Species),
			Weight:   strings.TrimSpace(in.Info.Weight),
			Age:      strings.TrimSpace(in.Info.Age),
			Breed:    strings.TrimSpace(in.Info.Breed),
			CollarID: strings.TrimSpace(in.Info.CollarID),
		},
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Selected devuelve la mascota seleccionada por defecto: la primera de la
// lista. La selección explícita vive en el cliente, no aquí.
func (s *Service) Selected(ctx context.Context) (Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}
	if len(all) == 0 {
		return Pet{}, ErrNoPets
	}
	return all[0], nil
}
