package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/ezekielbrioso/Florish/src/builder/application/response"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/builder/domain/port"
)

// FinalizeBouquetUseCase emite el compuesto del ramo hacia el carrito
type FinalizeBouquetUseCase struct {
	store    port.SessionStore
	cartSink port.CartSink
}

// NewFinalizeBouquetUseCase crea una nueva instancia del caso de uso
func NewFinalizeBouquetUseCase(store port.SessionStore, cartSink port.CartSink) *FinalizeBouquetUseCase {
	return &FinalizeBouquetUseCase{
		store:    store,
		cartSink: cartSink,
	}
}

// Execute congela las selecciones como CompositeLineItem y lo inserta
// en el carrito del usuario
// Si faltan requisitos retorna ValidationError con la lista de faltantes
// Finalizar NO muta el ledger: limpiar el wizard es un Reset aparte
func (uc *FinalizeBouquetUseCase) Execute(ctx context.Context, sessionID, userEmail string) (*response.FinalizeResponse, error) {
	session, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.Finalized() {
		return nil, entity.ErrSessionFinalized
	}

	item, err := entity.NewCompositeLineItem(session.Ledger, session.Index)
	if err != nil {
		return nil, err
	}

	if err := uc.cartSink.Insert(ctx, userEmail, item); err != nil {
		return nil, fmt.Errorf("error inserting composite into cart: %w", err)
	}

	session.MarkFinalized()
	log.Printf("✅ Bouquet finalized: session=%s item=%s total=%s", session.ID, item.ID, item.TotalPrice)

	return &response.FinalizeResponse{Item: item}, nil
}
