package port

import "github.com/ezekielbrioso/Florish/src/cart/domain/entity"

// CartRepository guarda el carrito de cada usuario
// GetOrCreate retorna siempre un carrito utilizable (vacío si es nuevo)
type CartRepository interface {
	GetOrCreate(userEmail string) (*entity.Cart, error)
	Save(cart *entity.Cart)
	Delete(userEmail string)
}
