package notifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/", createNotificationHandler(svc))
		nr.Get("/unread-count", unreadCountHandler(svc))
		nr.Post("/read-all", markAllReadHandler(svc))
		nr.Post("/{notificationID}/read", markReadHandler(svc))
		nr.Delete("/{notificationID}", deleteNotificationHandler(svc))
	})
}

// customNotificationRequest es el cuerpo para crear una notificación manual.
type customNotificationRequest struct {
	PetID    int64    `json:"petId"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Type     Type     `json:"type" enums:"reminder,appointment,medication,vaccination,exam,general,emergency"`
	Priority Priority `json:"priority" enums:"low,medium,high"`
}

func petQueryParam(r *http.Request) int64 {
	v := r.URL.Query().Get("pet")
	if v == "" {
		return 0
	}
	id, _ := strconv.ParseInt(v, 10, 64)
	return id
}

// listNotificationsHandler godoc
// @Summary Listar notificaciones
// @Description Regenera las notificaciones derivadas de los eventos, las mezcla con las personalizadas y los flags de leído, y devuelve la lista ordenada por hora descendente. Con `pet` filtra por mascota.
// @Tags notifications
// @Produce json
// @Param pet query int false "ID de mascota"
// @Success 200 {array} Notification
// @Failure 500 {string} string "internal error"
// @Router /notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), petQueryParam(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createNotificationHandler godoc
// @Summary Crear notificación manual
// @Description Crea una notificación no derivada de ningún evento. Sobrevive a las regeneraciones hasta que se borre explícitamente.
// @Tags notifications
// @Accept json
// @Produce json
// @Param payload body customNotificationRequest true "Datos de la notificación; type default general, priority default medium"
// @Success 201 {object} Notification
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Router /notifications [post]
func createNotificationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req customNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.AddCustom(r.Context(), CustomInput{
			PetID:    req.PetID,
			Title:    req.Title,
			Message:  req.Message,
			Type:     req.Type,
			Priority: req.Priority,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "petId and title are required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, n)
	}
}

// markReadHandler godoc
// @Summary Marcar notificación como leída
// @Tags notifications
// @Param notificationID path string true "ID de la notificación"
// @Success 204 {string} string ""
// @Failure 404 {string} string "notification not found"
// @Router /notifications/{notificationID}/read [post]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.MarkRead(r.Context(), chi.URLParam(r, "notificationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// markAllReadHandler godoc
// @Summary Marcar todas como leídas
// @Description Marca todas las notificaciones como leídas. Con `pet` solo las de esa mascota.
// @Tags notifications
// @Param pet query int false "ID de mascota"
// @Success 204 {string} string ""
// @Router /notifications/read-all [post]
func markAllReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.MarkAllRead(r.Context(), petQueryParam(r)); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteNotificationHandler godoc
// @Summary Borrar notificación
// @Description Borra una notificación. Si era derivada de un evento que sigue vigente, reaparecerá en la próxima regeneración.
// @Tags notifications
// @Param notificationID path string true "ID de la notificación"
// @Success 204 {string} string ""
// @Failure 404 {string} string "notification not found"
// @Router /notifications/{notificationID} [delete]
func deleteNotificationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Remove(r.Context(), chi.URLParam(r, "notificationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// unreadCountHandler godoc
// @Summary Contar no leídas
// @Tags notifications
// @Produce json
// @Param pet query int false "ID de mascota"
// @Success 200 {object} map[string]int
// @Router /notifications/unread-count [get]
func unreadCountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.UnreadCount(r.Context(), petQueryParam(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": count})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
