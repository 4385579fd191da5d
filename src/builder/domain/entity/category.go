package entity

import "fmt"

// Category representa una de las 6 categorías fijas del armado de ramos
type Category string

const (
	CategoryBase    Category = "base"
	CategoryFocal   Category = "focal"
	CategoryFiller  Category = "filler"
	CategoryWrapper Category = "wrapper"
	CategoryRibbon  Category = "ribbon"
	CategoryCard    Category = "card"
)

// AllCategories lista las categorías en el orden de los pasos del wizard
var AllCategories = []Category{
	CategoryBase,
	CategoryFocal,
	CategoryFiller,
	CategoryWrapper,
	CategoryRibbon,
	CategoryCard,
}

// ParseCategory valida y convierte un token de categoría
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// IsFlower indica si la categoría admite cantidades por item
// Solo base/focal/filler son flores; el resto son slots únicos
func (c Category) IsFlower() bool {
	return c == CategoryBase || c == CategoryFocal || c == CategoryFiller
}

// Step retorna el número de paso del wizard (1..6)
func (c Category) Step() int {
	for i, known := range AllCategories {
		if c == known {
			return i + 1
		}
	}
	return 0
}
