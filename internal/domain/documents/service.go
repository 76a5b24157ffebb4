package documents

import (
	"context"
	"errors"
	"sort"
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

type AddInput struct {
	PetID    int64
	Name     string
	FileType string
	FileURL  string
	FileSize int64
	Category Category
	Notes    string
}

func (s *Service) Add(ctx context.Context, in AddInput) (PetDocument, error) {
	if in.PetID == 0 {
		return PetDocument{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return PetDocument{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FileURL) == "" {
		return PetDocument{}, ErrInvalidInput
	}
	if in.FileSize < 0 {
		return PetDocument{}, ErrInvalidInput
	}
	cat := in.Category
	if cat == "" {
		cat = CategoryOther
	}
	if !cat.Valid() {
		return PetDocument{}, ErrInvalidInput
	}

	d := PetDocument{
		ID:         "doc-" + uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		PetID:      in.PetID,
		FileType:   strings.ToLower(strings.TrimSpace(in.FileType)),
		FileURL:    strings.TrimSpace(in.FileURL),
		FileSize:   in.FileSize,
		UploadDate: s.now(),
		Category:   cat,
		Notes:      strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return PetDocument{}, err
	}
	return d, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// ToggleFavorite invierte la marca de favorito del documento.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (PetDocument, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return PetDocument{}, err
	}
	d.IsFavorite = !d.IsFavorite
	if err := s.repo.Update(ctx, d); err != nil {
		return PetDocument{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (PetDocument, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByPet devuelve los documentos de una mascota (petID 0 = todas),
// opcionalmente filtrados por categoría, los más recientes primero.
func (s *Service) ListByPet(ctx context.Context, petID int64, cat Category) ([]PetDocument, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PetDocument, 0, len(all))
	for _, d := range all {
		if petID != 0 && d.PetID != petID {
			continue
		}
		if cat != "" && d.Category != cat {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadDate.After(out[j].UploadDate)
	})
	return out, nil
}
