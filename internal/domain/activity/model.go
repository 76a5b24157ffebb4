package activity

import "strings"

// Sample es una muestra del collar GPS: una fila por hora (rango día), por
// día (rango semana) o por semana (rango mes).
type Sample struct {
	Hour     string `json:"hour"`
	Day      string `json:"day"`
	Date     string `json:"date"`
	Distance int    `json:"distance"` // metros
	Steps    int    `json:"steps"`
	Active   int    `json:"active"`   // minutos
	Inactive int    `json:"inactive"` // minutos
	Location string `json:"location"` // casa, quintal, rua, parque, casa+rua, misto
}

type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// ParseRange normaliza el query param; cualquier valor desconocido cae en
// "day", igual que el valor por defecto del panel.
func ParseRange(s string) TimeRange {
	switch TimeRange(strings.ToLower(strings.TrimSpace(s))) {
	case RangeWeek:
		return RangeWeek
	case RangeMonth:
		return RangeMonth
	default:
		return RangeDay
	}
}

// Niveles de actividad según porcentaje de tiempo activo.
const (
	LevelHigh     = "ALTO"     // >= 50%
	LevelModerate = "MODERADO" // >= 30%
	LevelLow      = "BAIXO"    // < 30%
)

type LocationCount struct {
	Location   string `json:"location"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Summary agrega las muestras de un rango: totales, porcentaje activo, nivel
// y distribución de lugares.
type Summary struct {
	TotalDistance     int             `json:"totalDistance"`
	TotalSteps        int             `json:"totalSteps"`
	TotalActiveTime   int             `json:"totalActiveTime"`
	TotalInactiveTime int             `json:"totalInactiveTime"`
	ActivePercentage  int             `json:"activePercentage"`
	ActivityLevel     string          `json:"activityLevel"`
	LocationCount     []LocationCount `json:"locationCount"`
}

// AlertReport agrupa los avisos de comportamiento de una mascota.
type AlertReport struct {
	HasAlerts bool     `json:"hasAlerts"`
	Alerts    []string `json:"alerts"`
}
