package documents

import (
	"fmt"
	"time"
)

// PetDocument es un archivo adjunto al historial de la mascota. El archivo en
// sí vive fuera del sistema; acá solo se guardan los metadatos y la URL.
type PetDocument struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PetID      int64     `json:"petId"`
	FileType   string    `json:"fileType"` // pdf, jpg, png...
	FileURL    string    `json:"fileURL"`
	FileSize   int64     `json:"fileSize"` // bytes
	UploadDate time.Time `json:"uploadDate"`
	Category   Category  `json:"category"`
	Notes      string    `json:"notes,omitempty"`
	IsFavorite bool      `json:"isFavorite"`
}

type Category string

const (
	CategoryVaccines      Category = "vacinas"
	CategoryPrescriptions Category = "receitas"
	CategoryExams         Category = "exames"
	CategoryOther         Category = "outros"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVaccines, CategoryPrescriptions, CategoryExams, CategoryOther:
		return true
	}
	return false
}

// Label devuelve el nombre visible de la categoría.
func (c Category) Label() string {
	switch c {
	case CategoryVaccines:
		return "Vacinas"
	case CategoryPrescriptions:
		return "Receitas"
	case CategoryExams:
		return "Exames"
	case CategoryOther:
		return "Outros"
	}
	return string(c)
}

// FormatFileSize formatea bytes como "N bytes", "N.N KB" o "N.N MB".
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d bytes", bytes)
	case bytes < 1048576:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/1048576)
	}
}
