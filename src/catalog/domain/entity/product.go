package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un ramo prearmado del shop (colección bouquets)
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Type        string          `json:"type,omitempty"`
	Color       string          `json:"color,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `json:"stock"`
	Occasion    string          `json:"occasion,omitempty"`
	Description string          `json:"description,omitempty"`
}

// NewProduct crea un producto del shop validando lo mínimo
func NewProduct(name, category string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if category == "" {
		return nil, ErrInvalidCategory
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &Product{
		ID:       uuid.New().String(),
		Name:     name,
		Category: category,
		Price:    price,
	}, nil
}

// OccasionProduct representa un ramo temático por ocasión
// (colección occasion_bouquets: cumpleaños, aniversario, etc.)
type OccasionProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Occasion    string          `json:"occasion"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `json:"stock"`
}
