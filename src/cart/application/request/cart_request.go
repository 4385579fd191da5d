package request

import "github.com/shopspring/decimal"

// AddItemRequest agrega un producto del catálogo al carrito
type AddItemRequest struct {
	LineID    string          `json:"line_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category,omitempty"`
	Color     string          `json:"color,omitempty"`
	Occasion  string          `json:"occasion,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity,omitempty"` // default 1
}

// UpdateQuantityRequest fija la cantidad de una línea del carrito
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
