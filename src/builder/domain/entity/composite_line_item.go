package entity

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// CompositeDisplayName es el nombre con el que el ramo entra al carrito
	CompositeDisplayName = "Custom Bouquet"

	// CompositeCategory es la categoría del item compuesto en el carrito
	CompositeCategory = "Custom Build"

	// DefaultCompositeImageURL se usa cuando el wrapper no aporta imagen
	DefaultCompositeImageURL = "/images/custom-bouquet.jpg"
)

// ComponentSnapshot es la copia congelada de un item seleccionado
// Copia por valor, desacoplada del CatalogItem vivo: una edición
// posterior del catálogo no puede cambiar el precio registrado
type ComponentSnapshot struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Color    string          `json:"color,omitempty"`
	Quantity int             `json:"quantity,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// BouquetComponents agrupa los snapshots de todas las selecciones
type BouquetComponents struct {
	BaseFlowers   []ComponentSnapshot `json:"base_flowers"`
	FocalFlowers  []ComponentSnapshot `json:"focal_flowers"`
	FillerFlowers []ComponentSnapshot `json:"filler_flowers"`
	Wrapper       *ComponentSnapshot  `json:"wrapper,omitempty"`
	Ribbon        *ComponentSnapshot  `json:"ribbon,omitempty"`
	Card          *ComponentSnapshot  `json:"card,omitempty"`
}

// CompositeLineItem es el "producto virtual" que representa un ramo
// armado completo como una sola línea del carrito
// Efímero: se construye una única vez al finalizar
type CompositeLineItem struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Category    string            `json:"category"`
	TotalPrice  decimal.Decimal   `json:"total_price"`
	ImageURL    string            `json:"image_url"`
	IsComposite bool              `json:"is_composite"`
	Components  BouquetComponents `json:"components"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewCompositeLineItem finaliza el ledger: valida los mínimos, congela
// cada selección como snapshot por valor y calcula el total
// Nunca muta el ledger; limpiar el wizard tras agregar al carrito
// es responsabilidad del caller (Reset explícito)
//
// El id es fresco en cada llamada (derivado del timestamp de creación),
// por eso dos ramos idénticos armados por separado nunca se fusionan
// en el carrito
func NewCompositeLineItem(ledger *SelectionLedger, index CatalogIndex) (*CompositeLineItem, error) {
	if missing := ledger.MissingRequirements(); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	now := time.Now()
	components := BouquetComponents{}

	for _, id := range ledger.BaseFlowerIDs() {
		if item, ok := index.Get(id); ok {
			components.BaseFlowers = append(components.BaseFlowers, ComponentSnapshot{
				Name:  item.Name,
				Price: item.UnitPrice,
				Color: item.Color,
			})
		}
	}
	components.FocalFlowers = flowerSnapshots(ledger.FocalQuantities(), index)
	components.FillerFlowers = flowerSnapshots(ledger.FillerQuantities(), index)

	imageURL := DefaultCompositeImageURL
	if id, ok := ledger.WrapperID(); ok {
		if item, found := index.Get(id); found {
			components.Wrapper = &ComponentSnapshot{
				Name:  item.Name,
				Price: item.UnitPrice,
				Color: item.Color,
			}
			if item.ImageURL != "" {
				imageURL = item.ImageURL
			}
		}
	}
	if id, ok := ledger.RibbonID(); ok {
		if item, found := index.Get(id); found {
			components.Ribbon = &ComponentSnapshot{
				Name:  item.Name,
				Price: item.UnitPrice,
				Color: item.Color,
			}
		}
	}
	if card, ok := ledger.Card(); ok {
		if item, found := index.Get(card.ItemID); found {
			components.Card = &ComponentSnapshot{
				Name:    item.Name,
				Price:   item.UnitPrice,
				Message: card.Message,
			}
		}
	}

	return &CompositeLineItem{
		ID:          fmt.Sprintf("custom-%d", now.UnixNano()),
		DisplayName: CompositeDisplayName,
		Category:    CompositeCategory,
		TotalPrice:  ComputeTotal(ledger, index).Round(2),
		ImageURL:    imageURL,
		IsComposite: true,
		Components:  components,
		CreatedAt:   now,
	}, nil
}

// flowerSnapshots congela flores con cantidad, en orden estable por id
// (los mapas de Go no garantizan orden de iteración)
func flowerSnapshots(quantities map[string]int, index CatalogIndex) []ComponentSnapshot {
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var snapshots []ComponentSnapshot
	for _, id := range ids {
		if item, ok := index.Get(id); ok {
			snapshots = append(snapshots, ComponentSnapshot{
				Name:     item.Name,
				Price:    item.UnitPrice,
				Color:    item.Color,
				Quantity: quantities[id],
			})
		}
	}
	return snapshots
}
