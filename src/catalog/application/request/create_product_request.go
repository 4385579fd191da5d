package request

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto desde el panel de administración
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	ImageURL    string          `json:"image_url,omitempty"`
	Stock       int             `json:"stock,omitempty"`
	Occasion    string          `json:"occasion,omitempty"`
	Color       string          `json:"color,omitempty"`
}
