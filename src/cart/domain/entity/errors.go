package entity

import "errors"

var (
	ErrUserEmailRequired = errors.New("user email is required")
	ErrLineIDRequired    = errors.New("line_id is required")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidPrice      = errors.New("unit_price must be greater than or equal to 0")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrCartItemNotFound  = errors.New("cart item not found")
)
