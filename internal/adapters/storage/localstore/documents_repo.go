package localstore

import (
	"context"
	"errors"
	"sync"

	"pet-care-companion/internal/domain/documents"
)

type documentRepo struct {
	mu    sync.RWMutex
	store *Store
	byID  map[string]documents.PetDocument
	order []string
}

// NewDocumentRepo carga el snapshot de documentos; si no existe o está
// corrupto, siembra los de demostración.
func NewDocumentRepo(store *Store) documents.Repository {
	list, ok := readList[documents.PetDocument](store, keyDocuments)
	if !ok {
		list = documents.Seed()
		if err := writeList(store, keyDocuments, list); err != nil {
			store.warn(keyDocuments, err)
		}
	}

	r := &documentRepo{store: store, byID: make(map[string]documents.PetDocument, len(list))}
	for _, d := range list {
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
	return r.flushLocked()
}

func (r *documentRepo) Update(ctx context.Context, d documents.PetDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return r.flushLocked()
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
	return r.flushLocked()
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

	return r.snapshotLocked(), nil
}

func (r *documentRepo) snapshotLocked() []documents.PetDocument {
	out := make([]documents.PetDocument, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *documentRepo) flushLocked() error {
	return writeList(r.store, keyDocuments, r.snapshotLocked())
}
