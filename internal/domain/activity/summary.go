package activity

import (
	"math"
	"sort"
)

// CalculateSummary agrega una serie de muestras. Las percentagens de lugar se
// redondean de forma independiente, por lo que pueden no sumar 100.
func CalculateSummary(samples []Sample) Summary {
	s := Summary{LocationCount: []LocationCount{}}

	counts := map[string]int{}
	firstSeen := map[string]int{}
	for i, sm := range samples {
		s.TotalDistance += sm.Distance
		s.TotalSteps += sm.Steps
		s.TotalActiveTime += sm.Active
		s.TotalInactiveTime += sm.Inactive
		if counts[sm.Location] == 0 {
			firstSeen[sm.Location] = i
		}
		counts[sm.Location]++
	}

	total := s.TotalActiveTime + s.TotalInactiveTime
	if total > 0 {
		s.ActivePercentage = int(math.Round(float64(s.TotalActiveTime) / float64(total) * 100))
	}

	switch {
	case s.ActivePercentage >= 50:
		s.ActivityLevel = LevelHigh
	case s.ActivePercentage >= 30:
		s.ActivityLevel = LevelModerate
	default:
		s.ActivityLevel = LevelLow
	}

	for loc, count := range counts {
		s.LocationCount = append(s.LocationCount, LocationCount{
			Location:   loc,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(len(samples)) * 100)),
		})
	}
	// Orden estable: por count descendente; los empates quedan en el orden en
	// que el lugar apareció en la serie.
	sort.Slice(s.LocationCount, func(i, j int) bool {
		if s.LocationCount[i].Count != s.LocationCount[j].Count {
			return s.LocationCount[i].Count > s.LocationCount[j].Count
		}
		return firstSeen[s.LocationCount[i].Location] < firstSeen[s.LocationCount[j].Location]
	})

	return s
}

// SummaryFor calcula el resumen para la mascota y el rango.
func SummaryFor(petID int64, rng TimeRange) Summary {
	return CalculateSummary(SamplesFor(petID, rng))
}
