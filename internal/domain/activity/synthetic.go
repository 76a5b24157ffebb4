package activity

import (
	"fmt"
	"math/rand"
)

// syntheticSamples genera una serie plausible para mascotas sin histórico en
// el collar. La semilla es el id de la mascota, así dos lecturas del mismo
// rango devuelven exactamente la misma serie.
func syntheticSamples(petID int64, rng TimeRange) []Sample {
	r := rand.New(rand.NewSource(petID))

	switch rng {
	case RangeWeek:
		days := []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sab", "Dom"}
		out := make([]Sample, 0, len(days))
		for i, day := range days {
			active := 90 + r.Intn(80)
			out = append(out, Sample{
				Hour:     "09:00",
				Day:      day,
				Date:     fmt.Sprintf("%02d/05", 29+i),
				Distance: 1200 + r.Intn(1500),
				Steps:    2500 + r.Intn(3000),
				Active:   active,
				Inactive: 480 - active,
				Location: "casa+rua",
			})
		}
		return out

	case RangeMonth:
		out := make([]Sample, 0, 4)
		for i := 0; i < 4; i++ {
			active := 700 + r.Intn(500)
			out = append(out, Sample{
				Hour:     "12:00",
				Day:      fmt.Sprintf("Sem %d", i+1),
				Date:     fmt.Sprintf("%02d/05", 1+i*7),
				Distance: 9000 + r.Intn(8000),
				Steps:    19000 + r.Intn(16000),
				Active:   active,
				Inactive: 3300 - active,
				Location: "misto",
			})
		}
		return out

	default:
		out := make([]Sample, 0, 24)
		for h := 0; h < 24; h++ {
			// Madrugada quieta, resto del día con actividad variable.
			var active int
			if h >= 1 && h <= 5 {
				active = r.Intn(4)
			} else {
				active = 5 + r.Intn(30)
			}
			loc := "casa"
			if active >= 25 {
				loc = "quintal"
			}
			out = append(out, Sample{
				Hour:     fmt.Sprintf("%02d:00", h),
				Day:      "Seg",
				Date:     "29/05",
				Distance: active * 8,
				Steps:    active * 18,
				Active:   active,
				Inactive: 60 - active,
				Location: loc,
			})
		}
		return out
	}
}
