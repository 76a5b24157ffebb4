package telemedicine

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/telemedicine", func(tr chi.Router) {
		tr.Get("/specialties", listSpecialtiesHandler())
		tr.Get("/waiting-messages", waitingMessagesHandler())
	})
}

// listSpecialtiesHandler godoc
// @Summary Listar especialidades de teleconsulta
// @Tags telemedicine
// @Produce json
// @Success 200 {array} Specialty
// @Router /telemedicine/specialties [get]
func listSpecialtiesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Specialties())
	}
}

// waitingMessagesHandler godoc
// @Summary Mensajes de la sala de espera
// @Tags telemedicine
// @Produce json
// @Success 200 {array} string
// @Router /telemedicine/waiting-messages [get]
func waitingMessagesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, WaitingMessages())
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
