package entity

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem representa una línea del carrito
// Details guarda el snapshot congelado de un ramo armado (componentes
// con nombre/precio/color/cantidad); para productos del catálogo queda vacío
type CartItem struct {
	LineID      string          `json:"line_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Color       string          `json:"color,omitempty"`
	Occasion    string          `json:"occasion,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Quantity    int             `json:"quantity"`
	IsComposite bool            `json:"is_composite,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
}

// NewCartItem crea una línea de carrito validando lo mínimo
func NewCartItem(lineID, name string, unitPrice decimal.Decimal, quantity int) (*CartItem, error) {
	if lineID == "" {
		return nil, ErrLineIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &CartItem{
		LineID:    lineID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}, nil
}

// Subtotal retorna unitPrice × cantidad de la línea
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart es el carrito de un usuario (una instancia por email)
type Cart struct {
	UserEmail string     `json:"user_email"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`

	// El repositorio entrega siempre el mismo *Cart por usuario, y las
	// requests HTTP de ese usuario pueden solaparse (un POST al carrito
	// contra el finalize del builder): el mutex serializa cada
	// read-modify-write sobre Items
	mu sync.Mutex
}

// NewCart crea un carrito vacío para un usuario
func NewCart(userEmail string) (*Cart, error) {
	if userEmail == "" {
		return nil, ErrUserEmailRequired
	}
	return &Cart{
		UserEmail: userEmail,
		UpdatedAt: time.Now(),
	}, nil
}

// Lock toma el mutex del carrito
func (c *Cart) Lock() { c.mu.Lock() }

// Unlock libera el mutex del carrito
func (c *Cart) Unlock() { c.mu.Unlock() }

// Add agrega una línea: si el line_id ya existe suma la cantidad
// (merge por id); si no, agrega la línea nueva
// Los compuestos del builder traen siempre un id fresco, por lo que
// dos ramos armados por separado nunca se fusionan aunque sean iguales
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].LineID == item.LineID {
			c.Items[i].Quantity += item.Quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
}

// UpdateQuantity fija la cantidad de una línea; menos de 1 la elimina
func (c *Cart) UpdateQuantity(lineID string, quantity int) error {
	if quantity < 1 {
		return c.Remove(lineID)
	}
	for i := range c.Items {
		if c.Items[i].LineID == lineID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrCartItemNotFound
}

// Remove elimina una línea del carrito
func (c *Cart) Remove(lineID string) error {
	for i := range c.Items {
		if c.Items[i].LineID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrCartItemNotFound
}

// Clear vacía el carrito
func (c *Cart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now()
}

// Subtotal suma los subtotales de todas las líneas a precisión completa
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range c.Items {
		subtotal = subtotal.Add(c.Items[i].Subtotal())
	}
	return subtotal
}

// Count retorna la cantidad total de unidades en el carrito
func (c *Cart) Count() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}
