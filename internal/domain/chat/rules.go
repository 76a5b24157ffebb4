package chat

import (
	"math/rand"
	"strings"
)

// Respuestas guionadas del bot. El orden importa: gana la primera regla cuyo
// disparador aparezca en el mensaje (en minúsculas).

type rule struct {
	triggers []string
	response string
}

var predefinedResponses = []rule{
	{
		triggers: []string{"olá", "ola", "oi", "hello", "hi"},
		response: "Olá! Como posso te ajudar hoje?",
	},
	{
		triggers: []string{"emergência", "emergencia", "urgente", "socorro", "ajuda", "emergency"},
		response: "Para situações de emergência, recomendo que você entre em contato imediatamente com o veterinário mais próximo. Deseja que eu te conecte com um atendente para mais orientações?",
	},
	{
		triggers: []string{"vacina", "vacinação", "imunização"},
		response: "As vacinas são essenciais para a saúde do seu pet. Gostaria de informações sobre quais vacinas são necessárias ou de agendar uma vacinação com um de nossos veterinários?",
	},
	{
		triggers: []string{"consulta", "agendar", "marcar", "veterinário", "veterinaria"},
		response: "Para agendar uma consulta veterinária, posso verificar os horários disponíveis. Você prefere ser atendido por um atendente para marcar sua consulta agora?",
	},
}

var defaultResponses = []string{
	"Entendi sua mensagem. Posso te conectar com um atendente PetCare para melhor atendimento. Gostaria disso?",
	"Para melhor atendimento às suas necessidades, posso conectá-lo com um de nossos atendentes especializados. Deseja falar com um atendente agora?",
	"Não tenho todas as informações sobre isso. Gostaria de conversar com um de nossos atendentes PetCare para obter ajuda mais específica?",
}

var handoffKeywords = []string{"atendente", "falar com", "pessoa", "humano"}

const (
	welcomeText        = "Como posso te ajudar hoje?"
	agentText          = "Você foi conectado a um atendente PetCare. Em breve, alguém entrará em contato com você."
	handoffRequestText = "Gostaria de falar com um atendente por favor."
	handoffAckText     = "Claro! Vou conectar você com um de nossos atendentes especializados."
)

// respond elige la respuesta del bot para el mensaje del usuario. Si ninguna
// regla dispara, sale una de las respuestas genéricas al azar.
func respond(input string, rnd *rand.Rand) string {
	lower := strings.ToLower(input)
	for _, r := range predefinedResponses {
		for _, trigger := range r.triggers {
			if strings.Contains(lower, trigger) {
				return r.response
			}
		}
	}
	return defaultResponses[rnd.Intn(len(defaultResponses))]
}

// wantsHandoff detecta si el usuario pidió hablar con una persona.
func wantsHandoff(input string) bool {
	lower := strings.ToLower(input)
	for _, kw := range handoffKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
