package documents

import "context"

// Repository persiste la lista de documentos. Las implementaciones escriben
// el snapshot completo tras cada mutación (patrón replace-the-whole-list del
// almacenamiento local).
type Repository interface {
	Create(ctx context.Context, d PetDocument) error
	Update(ctx context.Context, d PetDocument) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (PetDocument, error)
	List(ctx context.Context) ([]PetDocument, error)
}
