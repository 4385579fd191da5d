package store

import (
	"sync"

	"github.com/ezekielbrioso/Florish/src/cart/domain/entity"
)

// CartMemoryRepository guarda los carritos en memoria por email
// Equivale al carrito por navegador del frontend: no persiste entre
// reinicios y no necesita base de datos
type CartMemoryRepository struct {
	carts map[string]*entity.Cart
	mu    sync.RWMutex
}

// NewCartMemoryRepository crea un repositorio de carritos vacío
func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{
		carts: make(map[string]*entity.Cart),
	}
}

// GetOrCreate retorna el carrito del usuario, creándolo si no existe
func (r *CartMemoryRepository) GetOrCreate(userEmail string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart, ok := r.carts[userEmail]; ok {
		return cart, nil
	}

	cart, err := entity.NewCart(userEmail)
	if err != nil {
		return nil, err
	}
	r.carts[userEmail] = cart
	return cart, nil
}

// Save registra el carrito del usuario
func (r *CartMemoryRepository) Save(cart *entity.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.UserEmail] = cart
}

// Delete descarta el carrito del usuario
func (r *CartMemoryRepository) Delete(userEmail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userEmail)
}
