package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/chat/sessions", func(cr chi.Router) {
		cr.Post("/", createSessionHandler(svc))
		cr.Get("/{sessionID}", getSessionHandler(svc))
		cr.Post("/{sessionID}/messages", sendMessageHandler(svc))
		cr.Post("/{sessionID}/agent", requestAgentHandler(svc))
		cr.Delete("/{sessionID}", closeSessionHandler(svc))
	})
}

// sendMessageRequest es el cuerpo para enviar un mensaje al bot.
type sendMessageRequest struct {
	Text string `json:"text"`
}

// createSessionHandler godoc
// @Summary Abrir sesión de chat
// @Description Abre una conversación nueva; el bot la inicia con el saludo de bienvenida.
// @Tags chat
// @Produce json
// @Success 201 {object} Session
// @Router /chat/sessions [post]
func createSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := svc.CreateSession()
		writeJSON(w, http.StatusCreated, sess)
	}
}

// getSessionHandler godoc
// @Summary Obtener sesión de chat
// @Description Devuelve la sesión con su historial de mensajes. Los mensajes diferidos (bot o atendente) aparecen cuando vence su retardo.
// @Tags chat
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} Session
// @Failure 404 {string} string "session not found"
// @Router /chat/sessions/{sessionID} [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// sendMessageHandler godoc
// @Summary Enviar mensaje
// @Description Registra el mensaje del usuario y la respuesta guionada del bot. Si el mensaje pide un atendente, la sesión queda marcada y el atendente se conecta poco después.
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Param payload body sendMessageRequest true "Texto del mensaje"
// @Success 200 {object} Session
// @Failure 400 {string} string "invalid json / texto vacío"
// @Failure 404 {string} string "session not found"
// @Router /chat/sessions/{sessionID}/messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		text := strings.TrimSpace(req.Text)
		if text == "" {
			http.Error(w, "text is required", http.StatusBadRequest)
			return
		}

		sess, err := svc.Send(chi.URLParam(r, "sessionID"), text)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// requestAgentHandler godoc
// @Summary Pedir un atendente
// @Description Atajo del botón "Falar com atendente": registra la petición, la confirmación del bot y conecta al atendente.
// @Tags chat
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} Session
// @Failure 404 {string} string "session not found"
// @Router /chat/sessions/{sessionID}/agent [post]
func requestAgentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.RequestAgent(chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// closeSessionHandler godoc
// @Summary Cerrar sesión de chat
// @Description Descarta la sesión y su historial, y cancela los mensajes pendientes.
// @Tags chat
// @Param sessionID path string true "ID de la sesión"
// @Success 204 {string} string ""
// @Failure 404 {string} string "session not found"
// @Router /chat/sessions/{sessionID} [delete]
func closeSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CloseSession(chi.URLParam(r, "sessionID")); err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
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
