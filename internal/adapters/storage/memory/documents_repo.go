package memory

import (
	"context"
	"errors"
	"sync"

	"pet-care-companion/internal/domain/documents"
)

type documentRepo struct {
	mu    sync.RWMutex
	byID  map[string]documents.PetDocument
	order []string
}

// NewDocumentRepo crea el repositorio en memoria sembrado con los documentos
// de demostración.
func NewDocumentRepo() documents.Repository {
	r := &documentRepo{byID: make(map[string]documents.PetDocument)}
	for _, d := range documents.Seed() {
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r
}

func (r *documentRepo) Create(ctx context.Context, d documents.PetDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == "" {
		return errors.New("document id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("document already exists")
	}

	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *documentRepo) Update(ctx context.Context, d documents.PetDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id string) (documents.PetDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return documents.PetDocument{}, ErrNotFound
	}
	return d, nil
}

func (r *documentRepo) List(ctx context.Context) ([]documents.PetDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]documents.PetDocument, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
