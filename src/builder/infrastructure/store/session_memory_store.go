package store

import (
	"sync"

	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
)

// SessionMemoryStore guarda las sesiones activas del wizard en memoria
// Cada sesión pertenece a un solo usuario; el lock protege solo el mapa
type SessionMemoryStore struct {
	sessions map[string]*entity.BuilderSession
	mu       sync.RWMutex
}

// NewSessionMemoryStore crea un store de sesiones vacío
func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{
		sessions: make(map[string]*entity.BuilderSession),
	}
}

// Put registra una sesión por su id
func (s *SessionMemoryStore) Put(session *entity.BuilderSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID.String()] = session
}

// Get busca una sesión por id
func (s *SessionMemoryStore) Get(id string) (*entity.BuilderSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Delete descarta una sesión
func (s *SessionMemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
