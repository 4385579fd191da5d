package usecase

import (
	"github.com/ezekielbrioso/Florish/src/builder/application/response"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/builder/domain/port"
)

// GetSessionUseCase retorna el estado completo de una sesión del wizard
type GetSessionUseCase struct {
	store port.SessionStore
}

// NewGetSessionUseCase crea una nueva instancia del caso de uso
func NewGetSessionUseCase(store port.SessionStore) *GetSessionUseCase {
	return &GetSessionUseCase{store: store}
}

// Execute busca la sesión y arma su vista
func (uc *GetSessionUseCase) Execute(sessionID string) (*response.SessionResponse, error) {
	session, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	return buildSessionView(session), nil
}
