package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	builderentity "github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/cart/domain/entity"
	"github.com/ezekielbrioso/Florish/src/cart/domain/port"
)

// BuilderCartSink adapta el carrito al puerto CartSink del builder
// Los componentes del compuesto se serializan como snapshot inmutable
// dentro de la línea, desacoplados del catálogo vivo
type BuilderCartSink struct {
	cartRepo port.CartRepository
}

// NewBuilderCartSink crea una nueva instancia del adapter
func NewBuilderCartSink(cartRepo port.CartRepository) *BuilderCartSink {
	return &BuilderCartSink{
		cartRepo: cartRepo,
	}
}

// Insert agrega el ramo finalizado como una línea nueva del carrito
// El id del compuesto es siempre fresco, por eso el merge por id del
// carrito nunca fusiona dos ramos armados por separado
func (s *BuilderCartSink) Insert(ctx context.Context, userEmail string, composite *builderentity.CompositeLineItem) error {
	details, err := json.Marshal(composite.Components)
	if err != nil {
		return fmt.Errorf("error marshalling bouquet components: %w", err)
	}

	item, err := entity.NewCartItem(composite.ID, composite.DisplayName, composite.TotalPrice, 1)
	if err != nil {
		return fmt.Errorf("error building cart line for composite: %w", err)
	}
	item.Category = composite.Category
	item.ImageURL = composite.ImageURL
	item.IsComposite = true
	item.Details = details

	cart, err := s.cartRepo.GetOrCreate(userEmail)
	if err != nil {
		return err
	}

	cart.Lock()
	defer cart.Unlock()

	cart.Add(*item)
	s.cartRepo.Save(cart)

	return nil
}
