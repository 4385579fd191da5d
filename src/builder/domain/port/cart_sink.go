package port

import (
	"context"

	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
)

// CartSink recibe el compuesto finalizado tal cual
// Fusión de duplicados, fee de envío y persistencia del carrito son
// responsabilidad del carrito, no del builder
type CartSink interface {
	Insert(ctx context.Context, userEmail string, item *entity.CompositeLineItem) error
}
