package entity

import "errors"

var (
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidPrice       = errors.New("price must be greater than or equal to 0")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrFlowerTypeRequired = errors.New("flower items require a type (base, focal or filler)")
	ErrInvalidFlowerType  = errors.New("invalid flower type")
	ErrProductNotFound    = errors.New("product not found")
)
