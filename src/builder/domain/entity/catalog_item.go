package entity

import "github.com/shopspring/decimal"

const (
	// MaxBaseFlowers es el tope duro de flores base por ramo
	MaxBaseFlowers = 2

	// DefaultMaxQuantity es el tope por defecto de unidades por flor focal/filler
	DefaultMaxQuantity = 10
)

// CatalogItem representa un item comprable del catálogo de armado
// Entidad externa de solo lectura: el builder nunca la modifica
type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Color       string          `json:"color,omitempty"`
	ImageURL    string          `json:"image_url"`
	Category    Category        `json:"category"`
	MaxQuantity int             `json:"max_quantity,omitempty"`
}

// MaxPerSelection retorna el tope de unidades para este item
func (i CatalogItem) MaxPerSelection() int {
	if i.MaxQuantity > 0 {
		return i.MaxQuantity
	}
	return DefaultMaxQuantity
}

// CatalogIndex resuelve ids de items contra los items ya cargados del catálogo
// Se acumula a medida que el cursor trae cada categoría, para que los ids
// del ledger sigan resolviendo precio tras cambiar de categoría
type CatalogIndex map[string]CatalogItem

// NewCatalogIndex crea un índice vacío
func NewCatalogIndex() CatalogIndex {
	return make(CatalogIndex)
}

// Add indexa items por id (last-write-wins: el catálogo manda)
func (idx CatalogIndex) Add(items ...CatalogItem) {
	for _, item := range items {
		idx[item.ID] = item
	}
}

// Get busca un item por id
func (idx CatalogIndex) Get(id string) (CatalogItem, bool) {
	item, ok := idx[id]
	return item, ok
}
