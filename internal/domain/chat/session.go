package chat

import "time"

type Sender string

const (
	SenderUser  Sender = "user"
	SenderBot   Sender = "bot"
	SenderAgent Sender = "agent"
)

type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Session es una conversación con el bot. Vive solo en memoria: cerrar la
// sesión descarta el historial.
type Session struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	HandedOff bool      `json:"handedOff"`
	CreatedAt time.Time `json:"createdAt"`
}
