package events

import "time"

// Seed devuelve la lista inicial de eventos, con fechas relativas a now.
func Seed(now time.Time) []CalendarEvent {
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	return []CalendarEvent{
		{ID: "1", PetID: 3, Title: "Consulta de rotina", Type: TypeConsulta, Date: day(3), Time: "14:30", Reminder: true},
		{ID: "2", PetID: 1, Title: "Vacinação anual", Type: TypeVacina, Date: day(7), Time: "10:00", Reminder: true},
		{ID: "3", PetID: 2, Title: "Exame de sangue", Type: TypeExame, Date: day(5), Time: "09:15", Reminder: true},
		{ID: "4", PetID: 3, Title: "Dose de antibiótico", Type: TypeRemedio, Date: day(0), Time: "08:00", Reminder: true, Notes: "Administrar com alimento"},
		{ID: "5", PetID: 1, Title: "Aplicação de vermífugo", Type: TypeVermifugo, Date: day(14), Time: "19:00", Reminder: true},
		{ID: "6", PetID: 2, Title: "Cirurgia dentária", Type: TypeCirurgia, Date: day(21), Time: "08:30", Reminder: true, Notes: "Jejum de 12 horas antes da cirurgia"},
		{ID: "7", PetID: 3, Title: "Resultado de exames", Type: TypeExame, Date: day(10), Time: "15:45", Reminder: true},
		{ID: "8", PetID: 1, Title: "Consulta dermatológica", Type: TypeConsulta, Date: day(2), Time: "11:30", Reminder: true, Notes: "Verificar manchas na pele"},
		{ID: "9", PetID: 2, Title: "Vacina antirrábica", Type: TypeVacina, Date: day(12), Time: "16:00", Reminder: true},
		{ID: "10", PetID: 3, Title: "Medicação cardíaca", Type: TypeRemedio, Date: day(1), Time: "20:00", Reminder: true, Notes: "Administrar depois da janta"},
	}
}
