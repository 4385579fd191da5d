package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuildItemCategory clasifica los componentes del armado de ramos
type BuildItemCategory string

const (
	BuildItemFlower  BuildItemCategory = "flower"
	BuildItemWrapper BuildItemCategory = "wrapper"
	BuildItemRibbon  BuildItemCategory = "ribbon"
	BuildItemCard    BuildItemCategory = "card"
)

// FlowerType distingue las flores dentro de la categoría flower
type FlowerType string

const (
	FlowerTypeBase   FlowerType = "base"
	FlowerTypeFocal  FlowerType = "focal"
	FlowerTypeFiller FlowerType = "filler"
)

// BuildItem representa un componente comprable del Build-A-Bouquet
// Vive en la colección buildabouquet del catálogo
type BuildItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    BuildItemCategory `json:"category"`
	Type        FlowerType        `json:"type,omitempty"` // solo para category=flower
	Color       string            `json:"color,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	ImageURL    string            `json:"image_url"`
	Stock       int               `json:"stock"`
	MaxQuantity int               `json:"max_quantity,omitempty"`
	Description string            `json:"description,omitempty"`
}

// NewBuildItem crea un item de armado validando lo mínimo
func NewBuildItem(name string, category BuildItemCategory, flowerType FlowerType, price decimal.Decimal) (*BuildItem, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	switch category {
	case BuildItemFlower:
		if flowerType == "" {
			return nil, ErrFlowerTypeRequired
		}
	case BuildItemWrapper, BuildItemRibbon, BuildItemCard:
		flowerType = ""
	default:
		return nil, ErrInvalidCategory
	}

	return &BuildItem{
		ID:       uuid.New().String(),
		Name:     name,
		Category: category,
		Type:     flowerType,
		Price:    price,
	}, nil
}
