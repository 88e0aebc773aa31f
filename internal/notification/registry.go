package notification

import (
	"sync"

	"graduation-portal-backend/internal/logger"

	"github.com/google/uuid"
)

const defaultSessionBuffer = 32

// SessionRegistry tracks live client sessions per recipient
type SessionRegistry interface {
	Register(recipientID uuid.UUID) *Session
	Unregister(session *Session)
	Sessions(recipientID uuid.UUID) []*Session
	Deliver(msg Message) int
	Count() int
}

// Registry is the concurrent-safe SessionRegistry
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[*Session]struct{}
	buffer   int
}

// NewRegistry creates an empty registry; buffer is the per-session queue size
func NewRegistry(buffer int) *Registry {
	if buffer <= 0 {
		buffer = defaultSessionBuffer
	}
	return &Registry{
		sessions: map[uuid.UUID]map[*Session]struct{}{},
		buffer:   buffer,
	}
}

// Register opens a session for the recipient
func (r *Registry) Register(recipientID uuid.UUID) *Session {
	session := &Session{
		ID:          uuid.New(),
		RecipientID: recipientID,
		ch:          make(chan Message, r.buffer),
	}

	r.mu.Lock()
	if r.sessions[recipientID] == nil {
		r.sessions[recipientID] = map[*Session]struct{}{}
	}
	r.sessions[recipientID][session] = struct{}{}
	r.mu.Unlock()

	return session
}

// Unregister removes the session and closes its channel
func (r *Registry) Unregister(session *Session) {
	if session == nil {
		return
	}

	r.mu.Lock()
	if live := r.sessions[session.RecipientID]; live != nil {
		delete(live, session)
		if len(live) == 0 {
			delete(r.sessions, session.RecipientID)
		}
	}
	r.mu.Unlock()

	session.close()
}

// Sessions returns a snapshot of the recipient's sessions
func (r *Registry) Sessions(recipientID uuid.UUID) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	live := r.sessions[recipientID]
	items := make([]*Session, 0, len(live))
	for session := range live {
		items = append(items, session)
	}
	return items
}

// Deliver hands the message to each of the recipient's sessions and returns how many accepted it
func (r *Registry) Deliver(msg Message) int {
	delivered := 0
	for _, session := range r.Sessions(msg.RecipientID) {
		if session.deliver(msg) {
			delivered++
		}
	}
	return delivered
}

// CloseAll unregisters every session, ending their streams
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = map[uuid.UUID]map[*Session]struct{}{}
	r.mu.Unlock()

	closed := 0
	for _, live := range sessions {
		for session := range live {
			session.close()
			closed++
		}
	}
	return closed
}

// Count returns the number of open sessions
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, live := range r.sessions {
		total += len(live)
	}
	return total
}

// Session is one connected client of a recipient
type Session struct {
	ID          uuid.UUID
	RecipientID uuid.UUID

	ch      chan Message
	closeMu sync.Mutex
	closed  bool
}

// Events is closed when the session is unregistered
func (s *Session) Events() <-chan Message {
	return s.ch
}

// deliver never blocks; a full queue drops the incoming message
func (s *Session) deliver(msg Message) bool {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()

	if s.closed {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		logger.New().WithFields(map[string]interface{}{
			"session_id":      s.ID,
			"recipient_id":    s.RecipientID,
			"notification_id": msg.ID,
		}).Warn("Session queue full, dropping notification")
		return false
	}
}

func (s *Session) close() {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
