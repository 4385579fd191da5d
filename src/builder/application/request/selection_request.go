package request

// SelectCategoryRequest cambia la categoría activa del wizard
type SelectCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// SelectItemRequest referencia un item del catálogo cargado
type SelectItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// SelectCardRequest elige la tarjeta con su mensaje personalizado
type SelectCardRequest struct {
	ItemID  string `json:"item_id" binding:"required"`
	Message string `json:"message,omitempty"` // máximo 200 caracteres
}

// FinalizeRequest agrega el ramo finalizado al carrito del usuario
type FinalizeRequest struct {
	UserEmail string `json:"user_email" binding:"required,email"`
}
