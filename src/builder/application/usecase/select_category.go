package usecase

import (
	"context"
	"log"

	"github.com/ezekielbrioso/Florish/src/builder/application/response"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/builder/domain/port"
)

// SelectCategoryUseCase cambia la categoría activa y refresca sus items
type SelectCategoryUseCase struct {
	store   port.SessionStore
	catalog port.CatalogProvider
}

// NewSelectCategoryUseCase crea una nueva instancia del caso de uso
func NewSelectCategoryUseCase(store port.SessionStore, catalog port.CatalogProvider) *SelectCategoryUseCase {
	return &SelectCategoryUseCase{
		store:   store,
		catalog: catalog,
	}
}

// Execute mueve el cursor y hace UN único fetch para la nueva categoría
// (sin reintentos ni backoff). El lock no se sostiene durante el fetch:
// si otra request cambió la categoría mientras tanto, Apply descarta la
// respuesta tardía en vez de pisar la lista de la categoría vigente
func (uc *SelectCategoryUseCase) Execute(ctx context.Context, sessionID, categoryToken string) (*response.SessionResponse, error) {
	category, err := entity.ParseCategory(categoryToken)
	if err != nil {
		return nil, err
	}

	session, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	session.Lock()
	if session.Finalized() {
		session.Unlock()
		return nil, entity.ErrSessionFinalized
	}
	session.Cursor.Switch(category)
	session.Unlock()

	items, fetchErr := uc.catalog.FetchItems(ctx, category)
	if fetchErr != nil {
		log.Printf("⚠️  Catalog fetch failed for category %s: %v", category, fetchErr)
	}

	session.Lock()
	defer session.Unlock()

	if session.Cursor.Apply(category, items, fetchErr) && fetchErr == nil {
		session.Index.Add(items...)
	}

	return buildSessionView(session), nil
}
