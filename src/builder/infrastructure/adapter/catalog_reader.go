package adapter

import (
	"context"
	"errors"

	builderentity "github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	catalogusecase "github.com/ezekielbrioso/Florish/src/catalog/application/usecase"
	catalogentity "github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
)

// ErrCatalogUnavailable indica que el catálogo no tiene backend configurado
var ErrCatalogUnavailable = errors.New("catalog service unavailable")

// CatalogReader adapta el módulo Catalog al puerto CatalogProvider
// del builder: base/focal/filler consultan flores por tipo, el resto
// consulta por categoría
type CatalogReader struct {
	listBuildItemsUC *catalogusecase.ListBuildItemsUseCase
}

// NewCatalogReader crea una nueva instancia del adapter
func NewCatalogReader(listBuildItemsUC *catalogusecase.ListBuildItemsUseCase) *CatalogReader {
	return &CatalogReader{
		listBuildItemsUC: listBuildItemsUC,
	}
}

// FetchItems trae los items comprables de una categoría del wizard
func (r *CatalogReader) FetchItems(ctx context.Context, category builderentity.Category) ([]builderentity.CatalogItem, error) {
	if r.listBuildItemsUC == nil {
		return nil, ErrCatalogUnavailable
	}

	var (
		items []catalogentity.BuildItem
		err   error
	)

	switch category {
	case builderentity.CategoryBase, builderentity.CategoryFocal, builderentity.CategoryFiller:
		items, err = r.listBuildItemsUC.FlowersByType(ctx, string(category))
	default:
		items, err = r.listBuildItemsUC.ByCategory(ctx, string(category))
	}
	if err != nil {
		return nil, err
	}

	out := make([]builderentity.CatalogItem, 0, len(items))
	for _, item := range items {
		out = append(out, builderentity.CatalogItem{
			ID:          item.ID,
			Name:        item.Name,
			UnitPrice:   item.Price,
			Color:       item.Color,
			ImageURL:    item.ImageURL,
			Category:    category,
			MaxQuantity: item.MaxQuantity,
		})
	}
	return out, nil
}
