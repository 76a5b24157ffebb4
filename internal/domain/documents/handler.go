package documents

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-care-companion/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/documents", func(dr chi.Router) {
		dr.Get("/", listPetDocumentsHandler(svc, petsSvc))
		dr.Post("/", addDocumentHandler(svc, petsSvc))
	})

	r.Route("/documents", func(dr chi.Router) {
		dr.Get("/", listDocumentsHandler(svc))
		dr.Get("/{documentID}", getDocumentHandler(svc))
		dr.Post("/{documentID}/favorite", toggleFavoriteHandler(svc))
		dr.Delete("/{documentID}", deleteDocumentHandler(svc))
	})
}

// documentRequest es el cuerpo para registrar un documento.
type documentRequest struct {
	Name     string   `json:"name"`
	FileType string   `json:"fileType"`
	FileURL  string   `json:"fileURL"`
	FileSize int64    `json:"fileSize"`
	Category Category `json:"category" enums:"vacinas,receitas,exames,outros"`
	Notes    string   `json:"notes"`
}

// documentResponse añade el tamaño formateado al documento.
type documentResponse struct {
	PetDocument
	FileSizeLabel string `json:"fileSizeLabel"`
}

func toResponse(d PetDocument) documentResponse {
	return documentResponse{PetDocument: d, FileSizeLabel: FormatFileSize(d.FileSize)}
}

func toResponseList(docs []PetDocument) []documentResponse {
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toResponse(d))
	}
	return out
}

// addDocumentHandler godoc
// @Summary Registrar documento
// @Description Registra los metadatos de un documento de la mascota. El archivo en sí se sirve desde fileURL.
// @Tags documents
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body documentRequest true "Metadatos del documento; category default outros"
// @Success 201 {object} documentResponse
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/documents [post]
func addDocumentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var req documentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Add(r.Context(), AddInput{
			PetID:    petID,
			Name:     req.Name,
			FileType: req.FileType,
			FileURL:  req.FileURL,
			FileSize: req.FileSize,
			Category: req.Category,
			Notes:    req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name and fileURL are required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(d))
	}
}

// listPetDocumentsHandler godoc
// @Summary Listar documentos de una mascota
// @Description Lista los documentos de la mascota, los más recientes primero. Con `category` filtra por categoría.
// @Tags documents
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param category query string false "vacinas, receitas, exames u outros"
// @Success 200 {array} documentResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/documents [get]
func listPetDocumentsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		cat := Category(strings.TrimSpace(r.URL.Query().Get("category")))
		docs, err := svc.ListByPet(r.Context(), petID, cat)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponseList(docs))
	}
}

// listDocumentsHandler godoc
// @Summary Listar todos los documentos
// @Tags documents
// @Produce json
// @Param category query string false "vacinas, receitas, exames u outros"
// @Success 200 {array} documentResponse
// @Router /documents [get]
func listDocumentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := Category(strings.TrimSpace(r.URL.Query().Get("category")))
		docs, err := svc.ListByPet(r.Context(), 0, cat)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponseList(docs))
	}
}

// getDocumentHandler godoc
// @Summary Obtener documento
// @Tags documents
// @Produce json
// @Param documentID path string true "ID del documento"
// @Success 200 {object} documentResponse
// @Failure 404 {string} string "document not found"
// @Router /documents/{documentID} [get]
func getDocumentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "documentID"))
		if err != nil {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(d))
	}
}

// toggleFavoriteHandler godoc
// @Summary Alternar favorito
// @Tags documents
// @Produce json
// @Param documentID path string true "ID del documento"
// @Success 200 {object} documentResponse
// @Failure 404 {string} string "document not found"
// @Router /documents/{documentID}/favorite [post]
func toggleFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.ToggleFavorite(r.Context(), chi.URLParam(r, "documentID"))
		if err != nil {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(d))
	}
}

// deleteDocumentHandler godoc
// @Summary Borrar documento
// @Tags documents
// @Param documentID path string true "ID del documento"
// @Success 204 {string} string ""
// @Failure 404 {string} string "document not found"
// @Router /documents/{documentID} [delete]
func deleteDocumentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "documentID")); err != nil {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
