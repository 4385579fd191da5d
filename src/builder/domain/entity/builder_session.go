package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionState describe el estado del wizard de armado
type SessionState string

const (
	SessionStateBrowsing  SessionState = "browsing"
	SessionStateReviewing SessionState = "reviewing" // implícito: canFinalize = true
	SessionStateFinalized SessionState = "finalized" // terminal: ya se emitió un compuesto
)

// BuilderSession es el dueño exclusivo de un ledger de selecciones
// Ciclo de vida = una corrida del wizard de un usuario; se construye
// fresca por sesión y se descarta al finalizar o resetear
// No hay estado global ni singleton: cada sesión vive en el store
type BuilderSession struct {
	ID        uuid.UUID
	Ledger    *SelectionLedger
	Cursor    *CatalogCursor
	Index     CatalogIndex
	CreatedAt time.Time

	finalized bool

	// El ledger en sí no necesita locks (un solo dueño), pero las
	// requests HTTP de una misma sesión pueden solaparse: el mutex
	// serializa mutación de ledger y aplicación de fetches
	mu sync.Mutex
}

// NewBuilderSession crea una sesión nueva con ledger vacío y cursor
// en la primera categoría
func NewBuilderSession() *BuilderSession {
	return &BuilderSession{
		ID:        uuid.New(),
		Ledger:    NewSelectionLedger(),
		Cursor:    NewCatalogCursor(),
		Index:     NewCatalogIndex(),
		CreatedAt: time.Now(),
	}
}

// Lock toma el mutex de la sesión
func (s *BuilderSession) Lock() { s.mu.Lock() }

// Unlock libera el mutex de la sesión
func (s *BuilderSession) Unlock() { s.mu.Unlock() }

// State deriva el estado del wizard: finalized es terminal, reviewing
// es implícito en cuanto se cumplen los mínimos
func (s *BuilderSession) State() SessionState {
	if s.finalized {
		return SessionStateFinalized
	}
	if s.Ledger.CanFinalize() {
		return SessionStateReviewing
	}
	return SessionStateBrowsing
}

// Finalized indica si la sesión ya emitió su compuesto
func (s *BuilderSession) Finalized() bool {
	return s.finalized
}

// MarkFinalized marca la sesión como terminal
func (s *BuilderSession) MarkFinalized() {
	s.finalized = true
}

// ResetLedger descarta las selecciones y vuelve la sesión a browsing
// El caller lo invoca tras un add-to-cart exitoso (operación separada
// y explícita; finalizar nunca muta el ledger)
func (s *BuilderSession) ResetLedger() {
	s.Ledger.Reset()
	s.finalized = false
}
