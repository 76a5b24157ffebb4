package events

type EventType string

const (
	TypeConsulta  EventType = "consulta"
	TypeVacina    EventType = "vacina"
	TypeExame     EventType = "exame"
	TypeRemedio   EventType = "remedio"
	TypeVermifugo EventType = "vermifugo"
	TypeCirurgia  EventType = "cirurgia"
)

func (t EventType) Valid() bool {
	switch t {
	case TypeConsulta, TypeVacina, TypeExame, TypeRemedio, TypeVermifugo, TypeCirurgia:
		return true
	}
	return false
}

// Label devuelve el rótulo en portugués que se muestra al usuario.
func (t EventType) Label() string {
	switch t {
	case TypeConsulta:
		return "Consulta"
	case TypeVacina:
		return "Vacinação"
	case TypeExame:
		return "Exame"
	case TypeRemedio:
		return "Medicação"
	case TypeVermifugo:
		return "Vermífugo"
	case TypeCirurgia:
		return "Cirurgia"
	default:
		return "Evento"
	}
}
