package localstore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-care-companion/internal/domain/pets"
)

var ErrNotFound = errors.New("not found")

type petRepo struct {
	mu    sync.RWMutex
	store *Store
	byID  map[int64]pets.Pet
}

// NewPetRepo carga el snapshot de mascotas; si no existe o está corrupto,
// siembra las de demostración.
func NewPetRepo(store *Store) pets.Repository {
	list, ok := readList[pets.Pet](store, keyPets)
	if !ok {
		list = pets.Seed()
		if err := writeList(store, keyPets, list); err != nil {
			store.warn(keyPets, err)
		}
	}

	r := &petRepo{store: store, byID: make(map[int64]pets.Pet, len(list))}
	for _, p := range list {
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
	return r.flushLocked()
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

	return r.sortedLocked(), nil
}

func (r *petRepo) sortedLocked() []pets.Pet {
	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *petRepo) flushLocked() error {
	return writeList(r.store, keyPets, r.sortedLocked())
}
