package activity

import "fmt"

// AlertsFor evalúa las reglas de comportamiento de cada perfil sobre la serie
// del rango pedido. Los textos son los que muestra el panel, en portugués.
//
// Perfiles: Bella (1) y Thor (3) son perros y deben salir a la calle todos
// los días; Dom (2) es un gato de interior que no debería salir de casa.
func AlertsFor(petID int64, rng TimeRange) AlertReport {
	samples := SamplesFor(petID, rng)
	summary := CalculateSummary(samples)

	var alerts []string

	switch petID {
	case 1: // Bella
		if rng == RangeDay && !wentOutside(samples) {
			alerts = append(alerts, "Bella não teve atividade externa hoje. Um passeio diário é recomendado para qualquer cachorro.")
		}
		if summary.ActivityLevel == LevelLow {
			alerts = append(alerts, fmt.Sprintf("Atividade muito abaixo do esperado para Bella (%d%%). Verifique se há algum problema de saúde.", summary.ActivePercentage))
		} else if summary.ActivityLevel == LevelModerate {
			alerts = append(alerts, fmt.Sprintf("Bella está com nível moderado de atividade (%d%%), mas poderia se beneficiar de mais exercícios.", summary.ActivePercentage))
		}

	case 3: // Thor
		if rng == RangeDay && !wentOutside(samples) {
			alerts = append(alerts, "Thor não teve atividade externa hoje. Um passeio diário é importante para sua saúde.")
		}
		if summary.ActivityLevel == LevelLow {
			alerts = append(alerts, fmt.Sprintf("Atividade abaixo do recomendado para um Golden Retriever como Thor (%d%%). Esta raça precisa de exercícios regulares.", summary.ActivePercentage))
		}

	case 2: // Dom
		if leftHome(samples) {
			alerts = append(alerts, "Dom saiu de casa. Verifique se ele está seguro, gatos devem permanecer em ambiente interno.")
		}
		if summary.ActivityLevel == LevelLow && summary.ActivePercentage < 10 {
			alerts = append(alerts, fmt.Sprintf("Nível de atividade muito baixo (%d%%). Mesmo para gatos, brincadeiras interativas são importantes para saúde mental e física.", summary.ActivePercentage))
		}
	}

	return AlertReport{HasAlerts: len(alerts) > 0, Alerts: alerts}
}

func wentOutside(samples []Sample) bool {
	for _, s := range samples {
		if s.Location == "rua" || s.Location == "parque" {
			return true
		}
	}
	return false
}

func leftHome(samples []Sample) bool {
	for _, s := range samples {
		if s.Location != "casa" {
			return true
		}
	}
	return false
}
