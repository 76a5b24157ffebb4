package telemedicine

// Specialty es una especialidad disponible para consulta remota.
type Specialty struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	AverageWaitTime string `json:"averageWaitTime,omitempty"`
}

// Specialties devuelve el catálogo de especialidades de teleconsulta.
func Specialties() []Specialty {
	return []Specialty{
		{ID: "general", Name: "Clínico Veterinário Geral", Description: "Consultas gerais e check-ups de rotina", Icon: "🩺", AverageWaitTime: "5-15 minutos"},
		{ID: "dermatology", Name: "Dermatologia", Description: "Problemas de pele, alergias e pelagem", Icon: "🔬", AverageWaitTime: "20-30 minutos"},
		{ID: "cardiology", Name: "Cardiologia", Description: "Saúde cardiovascular e problemas cardíacos", Icon: "❤️", AverageWaitTime: "30-45 minutos"},
		{ID: "orthopedics", Name: "Ortopedia", Description: "Problemas ósseos, articulares e de locomoção", Icon: "🦴", AverageWaitTime: "25-40 minutos"},
		{ID: "nutrition", Name: "Nutrição", Description: "Orientação alimentar e dietas especiais", Icon: "🥗", AverageWaitTime: "15-25 minutos"},
		{ID: "behavior", Name: "Comportamento", Description: "Problemas comportamentais e adestramento", Icon: "🧠", AverageWaitTime: "20-35 minutos"},
		{ID: "ophthalmology", Name: "Oftalmologia", Description: "Saúde ocular e problemas de visão", Icon: "👁️", AverageWaitTime: "30-40 minutos"},
		{ID: "dentistry", Name: "Odontologia", Description: "Saúde bucal e dental", Icon: "🦷", AverageWaitTime: "25-35 minutos"},
	}
}

// WaitingMessages son los textos que rota la pantalla de espera mientras se
// busca un profesional disponible.
func WaitingMessages() []string {
	return []string{
		"Estamos buscando um profissional para seu Pet 🔍",
		"Seu Pet será atendido em breve 💚",
		"Você sabia? Pets sentem quando estamos felizes! 😊",
		"Conectando com veterinários disponíveis... 👨‍⚕️",
		"Preparando sala de atendimento virtual 🏥",
		"Quase lá! Aguardando confirmação do profissional ⏰",
		"Curiosidade: Cães podem ter até 300 milhões de receptores olfativos! 👃",
		"Gatos dormem em média 16 horas por dia 😴",
		"Verificando disponibilidade de especialistas... ✅",
	}
}
