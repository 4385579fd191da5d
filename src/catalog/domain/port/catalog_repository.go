package port

import (
	"context"

	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
)

// BuildItemRepository define las consultas sobre los items de armado
type BuildItemRepository interface {
	FindAll(ctx context.Context) ([]entity.BuildItem, error)
	FindByCategory(ctx context.Context, category entity.BuildItemCategory) ([]entity.BuildItem, error)
	FindFlowersByType(ctx context.Context, flowerType entity.FlowerType) ([]entity.BuildItem, error)
}

// ProductRepository define las consultas y altas del catálogo del shop
type ProductRepository interface {
	FindBouquets(ctx context.Context) ([]entity.Product, error)
	FindOccasionProducts(ctx context.Context) ([]entity.OccasionProduct, error)
	Save(ctx context.Context, product *entity.Product) error
}
