package activity

import (
	"fmt"
	"math"
	"math/rand"
)

// HealthSample es una lectura de salud del collar: temperatura en °C,
// frecuencia cardiaca en bpm y actividad en escala 0-100.
type HealthSample struct {
	Hour        string  `json:"hour"`
	Day         string  `json:"day"`
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	HeartRate   int     `json:"heartRate"`
	Activity    int     `json:"activity"`
}

// Abnormality es el resultado del chequeo de lecturas fuera de rango.
type Abnormality struct {
	HasAbnormality bool   `json:"hasAbnormality"`
	Message        string `json:"message"`
}

// HealthSamplesFor devuelve las lecturas de salud para la mascota y el rango.
// Thor (3) arrastra un episodio febril en sus series; Bella (1) y Dom (2)
// tienen valores normales de perro y gato. El resto recibe una serie
// sintética determinista sin anomalías.
func HealthSamplesFor(petID int64, rng TimeRange) []HealthSample {
	switch petID {
	case 1:
		switch rng {
		case RangeWeek:
			return bellaHealthWeekly()
		case RangeMonth:
			return bellaHealthMonthly()
		default:
			return bellaHealthDaily()
		}
	case 2:
		switch rng {
		case RangeWeek:
			return domHealthWeekly()
		case RangeMonth:
			return domHealthMonthly()
		default:
			return domHealthDaily()
		}
	case 3:
		switch rng {
		case RangeWeek:
			return thorHealthWeekly()
		case RangeMonth:
			return thorHealthMonthly()
		default:
			return thorHealthDaily()
		}
	default:
		return syntheticHealthSamples(petID, rng)
	}
}

// CheckAbnormalities señala las lecturas fuera de rango conocidas. Solo Thor
// tiene un episodio registrado; las demás mascotas no reportan anomalías.
func CheckAbnormalities(petID int64, rng TimeRange) Abnormality {
	if petID == 3 {
		switch rng {
		case RangeWeek:
			return Abnormality{HasAbnormality: true, Message: "Alerta: Dados anormais detectados na quinta-feira (26/05)."}
		case RangeMonth:
			return Abnormality{HasAbnormality: true, Message: "Alerta: Episódio febril detectado em meados do mês."}
		default:
			return Abnormality{HasAbnormality: true, Message: "Alerta: Temperatura e batimentos cardíacos elevados detectados hoje entre 12h e 17h."}
		}
	}
	return Abnormality{}
}

func syntheticHealthSamples(petID int64, rng TimeRange) []HealthSample {
	r := rand.New(rand.NewSource(petID))
	roundTemp := func(t float64) float64 { return math.Round(t*10) / 10 }

	switch rng {
	case RangeWeek:
		days := []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sab", "Dom"}
		out := make([]HealthSample, 0, len(days))
		for i, day := range days {
			out = append(out, HealthSample{
				Day:         day,
				Date:        fmt.Sprintf("%02d/05", 23+i),
				Temperature: roundTemp(38 + r.Float64()*0.5),
				HeartRate:   80 + r.Intn(31),
				Activity:    30 + r.Intn(61),
			})
		}
		return out
	case RangeMonth:
		dates := []string{"29/04", "07/05", "14/05", "21/05", "29/05"}
		out := make([]HealthSample, 0, len(dates))
		for _, date := range dates {
			out = append(out, HealthSample{
				Date:        date,
				Temperature: roundTemp(38 + r.Float64()*0.5),
				HeartRate:   80 + r.Intn(31),
				Activity:    30 + r.Intn(61),
			})
		}
		return out
	default:
		out := make([]HealthSample, 0, 24)
		for h := 0; h < 24; h++ {
			out = append(out, HealthSample{
				Hour:        fmt.Sprintf("%02d:00", h),
				Day:         "Seg",
				Date:        "29/05",
				Temperature: roundTemp(38 + r.Float64()*0.5),
				HeartRate:   80 + r.Intn(31),
				Activity:    30 + r.Intn(61),
			})
		}
		return out
	}
}
