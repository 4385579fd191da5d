package response

import (
	"time"

	"github.com/ezekielbrioso/Florish/src/cart/domain/entity"
)

// CartResponse es la vista completa del carrito con sus totales
type CartResponse struct {
	UserEmail string            `json:"user_email"`
	Items     []entity.CartItem `json:"items"`
	Totals    entity.Totals     `json:"totals"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewCartResponse arma la vista a partir del carrito
// El caller debe tener tomado el lock del carrito; las líneas se copian
// para que la respuesta no comparta el slice vivo tras soltarlo
func NewCartResponse(cart *entity.Cart) *CartResponse {
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return &CartResponse{
		UserEmail: cart.UserEmail,
		Items:     items,
		Totals:    entity.ComputeTotals(cart),
		UpdatedAt: cart.UpdatedAt,
	}
}
