package chat

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("session not found")
)

// Service mantiene las sesiones de chat en memoria. Las respuestas del bot y
// la conexión con el atendente pueden ir con retardo; los timers quedan
// registrados para poder cancelarlos al cerrar la sesión o el servicio.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session
	timers   map[string][]*time.Timer
	closed   bool

	now        func() time.Time
	rnd        *rand.Rand
	botDelay   time.Duration
	agentDelay time.Duration
}

func NewService() *Service {
	return &Service{
		sessions:   make(map[string]*Session),
		timers:     make(map[string][]*time.Timer),
		now:        time.Now,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		botDelay:   0,
		agentDelay: time.Second,
	}
}

// CreateSession abre una conversación nueva con el saludo del bot.
func (s *Service) CreateSession() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
		Messages: []Message{{
			ID:        "welcome",
			Text:      welcomeText,
			Sender:    SenderBot,
			Timestamp: s.now(),
		}},
	}
	s.sessions[sess.ID] = sess
	return *sess
}

func (s *Service) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return snapshot(sess), nil
}

// Send registra el mensaje del usuario y dispara la respuesta del bot. Si el
// mensaje pide hablar con una persona, programa además la conexión con el
// atendente (una sola vez por sesión).
func (s *Service) Send(sessionID, text string) (Session, error) {
	if text == "" {
		return Session{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	s.appendLocked(sess, SenderUser, text)

	reply := respond(text, s.rnd)
	if s.botDelay == 0 {
		s.appendLocked(sess, SenderBot, reply)
	} else {
		s.scheduleLocked(sessionID, s.botDelay, SenderBot, reply)
	}

	if wantsHandoff(text) && !sess.HandedOff {
		sess.HandedOff = true
		s.scheduleLocked(sessionID, s.agentDelay, SenderAgent, agentText)
	}

	return snapshot(sess), nil
}

// RequestAgent es el atajo "Falar com atendente": registra la petición del
// usuario, la confirmación del bot y programa la conexión.
func (s *Service) RequestAgent(sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	s.appendLocked(sess, SenderUser, handoffRequestText)
	if s.botDelay == 0 {
		s.appendLocked(sess, SenderBot, handoffAckText)
	} else {
		s.scheduleLocked(sessionID, s.botDelay, SenderBot, handoffAckText)
	}

	if !sess.HandedOff {
		sess.HandedOff = true
		s.scheduleLocked(sessionID, s.agentDelay, SenderAgent, agentText)
	}

	return snapshot(sess), nil
}

// CloseSession descarta la sesión y cancela lo que tuviera pendiente.
func (s *Service) CloseSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	for _, t := range s.timers[id] {
		t.Stop()
	}
	delete(s.timers, id)
	delete(s.sessions, id)
	return nil
}

// Close cancela todos los timers pendientes. Tras cerrarlo, el servicio deja
// de programar mensajes diferidos.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for _, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
	}
	s.timers = make(map[string][]*time.Timer)
}

func (s *Service) appendLocked(sess *Session, sender Sender, text string) {
	sess.Messages = append(sess.Messages, Message{
		ID:        "msg-" + uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: s.now(),
	})
}

func (s *Service) scheduleLocked(sessionID string, delay time.Duration, sender Sender, text string) {
	if s.closed {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		sess, ok := s.sessions[sessionID]
		if !ok {
			return
		}
		s.appendLocked(sess, sender, text)
		s.dropTimerLocked(sessionID, t)
	})
	s.timers[sessionID] = append(s.timers[sessionID], t)
}

func (s *Service) dropTimerLocked(sessionID string, t *time.Timer) {
	timers := s.timers[sessionID]
	for i, other := range timers {
		if other == t {
			s.timers[sessionID] = append(timers[:i], timers[i+1:]...)
			return
		}
	}
}

func snapshot(sess *Session) Session {
	out := *sess
	out.Messages = append([]Message(nil), sess.Messages...)
	return out
}
