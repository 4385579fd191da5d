package usecase

import (
	"context"
	"log"

	"github.com/ezekielbrioso/Florish/src/builder/application/response"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/builder/domain/port"
)

// StartSessionUseCase arranca una corrida del wizard de armado
type StartSessionUseCase struct {
	store   port.SessionStore
	catalog port.CatalogProvider
}

// NewStartSessionUseCase crea una nueva instancia del caso de uso
func NewStartSessionUseCase(store port.SessionStore, catalog port.CatalogProvider) *StartSessionUseCase {
	return &StartSessionUseCase{
		store:   store,
		catalog: catalog,
	}
}

// Execute crea la sesión con ledger vacío y trae los items del primer paso
// Un fetch fallido no es fatal: la sesión arranca con lista vacía + flag
func (uc *StartSessionUseCase) Execute(ctx context.Context) (*response.SessionResponse, error) {
	session := entity.NewBuilderSession()
	uc.store.Put(session)

	items, err := uc.catalog.FetchItems(ctx, entity.CategoryBase)
	if err != nil {
		log.Printf("⚠️  Catalog fetch failed for category %s: %v", entity.CategoryBase, err)
	}

	session.Lock()
	defer session.Unlock()

	if session.Cursor.Apply(entity.CategoryBase, items, err) && err == nil {
		session.Index.Add(items...)
	}

	log.Printf("🌸 Builder session started: %s", session.ID)
	return buildSessionView(session), nil
}
