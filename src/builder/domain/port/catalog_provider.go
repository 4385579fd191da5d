package port

import (
	"context"

	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
)

// CatalogProvider es la capacidad de consulta de catálogo que consume
// el builder como colaborador externo
// Un error se recupera localmente como lista vacía + flag; el builder
// no interpreta detalle de transporte
type CatalogProvider interface {
	FetchItems(ctx context.Context, category entity.Category) ([]entity.CatalogItem, error)
}
