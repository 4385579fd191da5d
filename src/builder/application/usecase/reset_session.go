package usecase

import (
	"log"

	"github.com/ezekielbrioso/Florish/src/builder/application/response"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/builder/domain/port"
)

// ResetSessionUseCase descarta las selecciones tras un add-to-cart
type ResetSessionUseCase struct {
	store port.SessionStore
}

// NewResetSessionUseCase crea una nueva instancia del caso de uso
func NewResetSessionUseCase(store port.SessionStore) *ResetSessionUseCase {
	return &ResetSessionUseCase{store: store}
}

// Execute deja el ledger vacío y la sesión de vuelta en browsing
func (uc *ResetSessionUseCase) Execute(sessionID string) (*response.SessionResponse, error) {
	session, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	session.ResetLedger()
	log.Printf("🔄 Builder session reset: %s", session.ID)

	return buildSessionView(session), nil
}
