// Package localstore persiste cada colección del panel como un snapshot
// JSON en disco, bajo la misma clave que usaba el almacenamiento local del
// navegador (petcare-pets, petcare-events, petcare-documents,
// petcare-notifications). Un snapshot ilegible nunca es fatal: se descarta
// con un warn y la colección vuelve a su semilla.
package localstore

import (
	"encoding/json"

	"pet-care-companion/internal/platform/logger"

	"github.com/peterbourgon/diskv/v3"
)

const (
	keyPets          = "petcare-pets"
	keyEvents        = "petcare-events"
	keyDocuments     = "petcare-documents"
	keyNotifications = "petcare-notifications"
)

type Store struct {
	d   *diskv.Diskv
	log logger.Logger
}

// Open abre (o crea) el directorio de datos.
func Open(dir string, log logger.Logger) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		log: log,
	}
}

// readList lee el snapshot de una clave. Devuelve ok=false si la clave no
// existe o el contenido no se puede decodificar; el que llama decide la
// semilla.
func readList[T any](s *Store, key string) ([]T, bool) {
	if !s.d.Has(key) {
		return nil, false
	}
	data, err := s.d.Read(key)
	if err != nil {
		s.warn(key, err)
		return nil, false
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		s.warn(key, err)
		return nil, false
	}
	return out, true
}

func writeList[T any](s *Store, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.d.Write(key, data)
}

func (s *Store) warn(key string, err error) {
	if s.log != nil {
		s.log.Warn("stored snapshot unreadable, falling back to seed", map[string]any{
			"key": key,
			"err": err.Error(),
		})
	}
}
