package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-companion/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/events", func(er chi.Router) {
		er.Get("/", listPetEventsHandler(svc, petsSvc))
		er.Post("/", createEventHandler(svc, petsSvc))
	})

	r.Route("/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(svc))
		er.Get("/grouped", listGroupedHandler(svc))
		er.Patch("/{eventID}", updateEventHandler(svc))
		er.Post("/{eventID}/toggle", toggleEventHandler(svc))
		er.Delete("/{eventID}", deleteEventHandler(svc))
	})

	r.Get("/reminders/due", dueRemindersHandler(svc))
}

// eventRequest es el cuerpo para crear o editar un evento de calendario.
type eventRequest struct {
	PetID    int64     `json:"petId"`
	Title    string    `json:"title"`
	Type     EventType `json:"type" enums:"consulta,vacina,exame,remedio,vermifugo,cirurgia"`
	Date     string    `json:"date"` // RFC3339 o "2006-01-02"
	Time     string    `json:"time"` // "HH:MM"
	Reminder bool      `json:"reminder"`
	Notes    string    `json:"notes"`
}

func parseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// createEventHandler godoc
// @Summary Crear evento de calendario
// @Description Crea un evento (consulta, vacuna, examen, medicación, vermífugo o cirugía) para la mascota indicada.
// @Tags events
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body eventRequest true "Datos del evento; date en RFC3339 o YYYY-MM-DD, time en HH:MM"
// @Success 201 {object} CalendarEvent
// @Failure 400 {string} string "invalid json / fecha u hora inválida / tipo desconocido"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/events [post]
func createEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := parseEventDate(req.Date)
		if err != nil {
			http.Error(w, "date must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			PetID:    petID,
			Title:    req.Title,
			Type:     req.Type,
			Date:     date,
			Time:     req.Time,
			Reminder: req.Reminder,
			Notes:    req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, e)
	}
}

// listPetEventsHandler godoc
// @Summary Listar próximos eventos de una mascota
// @Description Lista los eventos no completados de la mascota dentro de la ventana de días indicada, ordenados por fecha.
// @Tags events
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param days query int false "Días hacia adelante (default 30)"
// @Success 200 {array} CalendarEvent
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/events [get]
func listPetEventsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		days := 0
		if v := r.URL.Query().Get("days"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				days = n
			}
		}

		items, err := svc.ListUpcoming(r.Context(), petID, days)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Lista todos los eventos. Con `date` filtra a un día (comparación por día local, ignora hora); con `pet` filtra por mascota.
// @Tags events
// @Produce json
// @Param date query string false "Día a filtrar (YYYY-MM-DD o RFC3339)"
// @Param pet query int false "ID de mascota"
// @Success 200 {array} CalendarEvent
// @Failure 400 {string} string "fecha inválida"
// @Router /events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var petID int64
		if v := r.URL.Query().Get("pet"); v != "" {
			petID, _ = strconv.ParseInt(v, 10, 64)
		}

		if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
			date, err := parseEventDate(v)
			if err != nil {
				http.Error(w, "date must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			items, err := svc.ListForDate(r.Context(), date, petID)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, items)
			return
		}

		all, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if petID != 0 {
			all = ForPet(all, petID)
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// listGroupedHandler godoc
// @Summary Listar eventos agrupados por mes
// @Description Agrupa los eventos por (mes, año), grupos ordenados ascendente. Filtros opcionales por mascota y tipo.
// @Tags events
// @Produce json
// @Param pet query int false "ID de mascota"
// @Param type query string false "Tipo de evento"
// @Success 200 {array} MonthGroup
// @Router /events/grouped [get]
func listGroupedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var petID int64
		if v := r.URL.Query().Get("pet"); v != "" {
			petID, _ = strconv.ParseInt(v, 10, 64)
		}
		typ := EventType(strings.TrimSpace(r.URL.Query().Get("type")))

		groups, err := svc.ListGrouped(r.Context(), petID, typ)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, groups)
	}
}

// updateEventHandler godoc
// @Summary Editar evento
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param payload body eventRequest true "Datos nuevos del evento"
// @Success 200 {object} CalendarEvent
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [patch]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := parseEventDate(req.Date)
		if err != nil {
			http.Error(w, "date must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), CreateInput{
			PetID:    req.PetID,
			Title:    req.Title,
			Type:     req.Type,
			Date:     date,
			Time:     req.Time,
			Reminder: req.Reminder,
			Notes:    req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// toggleEventHandler godoc
// @Summary Alternar completado
// @Description Marca o desmarca el evento como completado.
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} CalendarEvent
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/toggle [post]
func toggleEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.ToggleCompleted(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento
// @Tags events
// @Param eventID path string true "ID del evento"
// @Success 204 {string} string ""
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dueRemindersHandler godoc
// @Summary Recordatorios que vencen hoy
// @Description Eventos con recordatorio activo cuya fecha es hoy; es lo que muestra el chequeo horario.
// @Tags events
// @Produce json
// @Success 200 {array} CalendarEvent
// @Router /reminders/due [get]
func dueRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDueReminders(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
