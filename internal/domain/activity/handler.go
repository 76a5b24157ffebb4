package activity

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/activity", func(ar chi.Router) {
		ar.Get("/samples", activitySamplesHandler(svc))
		ar.Get("/summary", activitySummaryHandler(svc))
		ar.Get("/alerts", activityAlertsHandler(svc))
	})
	r.Route("/pets/{petID}/health", func(hr chi.Router) {
		hr.Get("/samples", healthSamplesHandler(svc))
		hr.Get("/abnormalities", healthAbnormalitiesHandler(svc))
	})
}

func petPathParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	return id, err == nil
}

func rangeQueryParam(r *http.Request) TimeRange {
	return ParseRange(r.URL.Query().Get("range"))
}

// activitySamplesHandler godoc
// @Summary Muestras de actividad del collar
// @Description Serie del collar GPS para el rango pedido: por hora (day), por día (week) o por semana (month).
// @Tags activity
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param range query string false "day, week o month (default day)"
// @Success 200 {array} Sample
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/activity/samples [get]
func activitySamplesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petPathParam(r)
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		samples, err := svc.Samples(r.Context(), petID, rangeQueryParam(r))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, samples)
	}
}

// activitySummaryHandler godoc
// @Summary Resumen de actividad
// @Description Totales de distancia, pasos y tiempo activo/inactivo, porcentaje activo, nivel (ALTO/MODERADO/BAIXO) y distribución de lugares.
// @Tags activity
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param range query string false "day, week o month (default day)"
// @Success 200 {object} Summary
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/activity/summary [get]
func activitySummaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petPathParam(r)
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		summary, err := svc.Summary(r.Context(), petID, rangeQueryParam(r))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// activityAlertsHandler godoc
// @Summary Alertas de comportamiento
// @Description Avisos según el perfil de la mascota: paseos pendientes para los perros, salidas de casa para el gato y niveles de actividad bajos.
// @Tags activity
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param range query string false "day, week o month (default day)"
// @Success 200 {object} AlertReport
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/activity/alerts [get]
func activityAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petPathParam(r)
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		report, err := svc.Alerts(r.Context(), petID, rangeQueryParam(r))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// healthSamplesHandler godoc
// @Summary Lecturas de salud del collar
// @Description Temperatura, frecuencia cardiaca y actividad para el rango pedido.
// @Tags health
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param range query string false "day, week o month (default day)"
// @Success 200 {array} HealthSample
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/health/samples [get]
func healthSamplesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petPathParam(r)
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		samples, err := svc.HealthSamples(r.Context(), petID, rangeQueryParam(r))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, samples)
	}
}

// healthAbnormalitiesHandler godoc
// @Summary Chequeo de lecturas anómalas
// @Tags health
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param range query string false "day, week o month (default day)"
// @Success 200 {object} Abnormality
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/health/abnormalities [get]
func healthAbnormalitiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petPathParam(r)
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		abn, err := svc.HealthAbnormalities(r.Context(), petID, rangeQueryParam(r))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, abn)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
