package usecase

import (
	"fmt"

	"github.com/ezekielbrioso/Florish/src/builder/application/response"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/builder/domain/port"
)

// UpdateSelectionUseCase aplica mutaciones del usuario sobre el ledger
// Cada operación valida antes de mutar; superar un tope es un no-op
// silencioso (el control deshabilitado ya lo comunica en la UI)
type UpdateSelectionUseCase struct {
	store port.SessionStore
}

// NewUpdateSelectionUseCase crea una nueva instancia del caso de uso
func NewUpdateSelectionUseCase(store port.SessionStore) *UpdateSelectionUseCase {
	return &UpdateSelectionUseCase{store: store}
}

// ToggleBase alterna una flor base (tope duro de 2 en la inserción)
func (uc *UpdateSelectionUseCase) ToggleBase(sessionID, itemID string) (*response.SessionResponse, error) {
	return uc.mutate(sessionID, itemID, entity.CategoryBase, func(s *entity.BuilderSession, item entity.CatalogItem) {
		s.Ledger.ToggleBaseFlower(item)
	})
}

// IncrementFlower suma una unidad de una flor focal o de relleno
func (uc *UpdateSelectionUseCase) IncrementFlower(sessionID string, category entity.Category, itemID string) (*response.SessionResponse, error) {
	switch category {
	case entity.CategoryFocal:
		return uc.mutate(sessionID, itemID, category, func(s *entity.BuilderSession, item entity.CatalogItem) {
			s.Ledger.IncrementFocal(item)
		})
	case entity.CategoryFiller:
		return uc.mutate(sessionID, itemID, category, func(s *entity.BuilderSession, item entity.CatalogItem) {
			s.Ledger.IncrementFiller(item)
		})
	default:
		return nil, fmt.Errorf("category %s does not support quantities", category)
	}
}

// DecrementFlower resta una unidad; llegar a 0 elimina la entrada
func (uc *UpdateSelectionUseCase) DecrementFlower(sessionID string, category entity.Category, itemID string) (*response.SessionResponse, error) {
	session, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.Finalized() {
		return nil, entity.ErrSessionFinalized
	}

	switch category {
	case entity.CategoryFocal:
		session.Ledger.DecrementFocal(itemID)
	case entity.CategoryFiller:
		session.Ledger.DecrementFiller(itemID)
	default:
		return nil, fmt.Errorf("category %s does not support quantities", category)
	}

	return buildSessionView(session), nil
}

// SetWrapper elige el papel de envoltura
func (uc *UpdateSelectionUseCase) SetWrapper(sessionID, itemID string) (*response.SessionResponse, error) {
	return uc.mutate(sessionID, itemID, entity.CategoryWrapper, func(s *entity.BuilderSession, item entity.CatalogItem) {
		s.Ledger.SetWrapper(item)
	})
}

// SetRibbon elige la cinta
func (uc *UpdateSelectionUseCase) SetRibbon(sessionID, itemID string) (*response.SessionResponse, error) {
	return uc.mutate(sessionID, itemID, entity.CategoryRibbon, func(s *entity.BuilderSession, item entity.CatalogItem) {
		s.Ledger.SetRibbon(item)
	})
}

// SetCard elige la tarjeta con su mensaje
func (uc *UpdateSelectionUseCase) SetCard(sessionID, itemID, message string) (*response.SessionResponse, error) {
	return uc.mutate(sessionID, itemID, entity.CategoryCard, func(s *entity.BuilderSession, item entity.CatalogItem) {
		s.Ledger.SetCard(item, message)
	})
}

// mutate resuelve el item contra el índice de la sesión, valida su
// categoría y aplica la mutación con el lock tomado
func (uc *UpdateSelectionUseCase) mutate(
	sessionID, itemID string,
	category entity.Category,
	apply func(*entity.BuilderSession, entity.CatalogItem),
) (*response.SessionResponse, error) {
	session, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.Finalized() {
		return nil, entity.ErrSessionFinalized
	}

	item, found := session.Index.Get(itemID)
	if !found {
		return nil, entity.ErrItemNotInCatalog
	}
	if item.Category != category {
		return nil, entity.ErrItemWrongCategory
	}

	apply(session, item)
	return buildSessionView(session), nil
}
