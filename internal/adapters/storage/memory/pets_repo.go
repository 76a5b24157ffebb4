package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-care-companion/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[int64]pets.Pet
}

// NewPetRepo crea el repositorio en memoria ya sembrado con las mascotas de
// demostración.
func NewPetRepo() pets.Repository {
	r := &petRepo{byID: make(map[int64]pets.Pet)}
	for _, p := range pets.Seed() {
		r.byID[p.ID] = p
	}
	return r
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}

	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	// Orden por id ascendente: las sembradas primero, luego por alta.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
