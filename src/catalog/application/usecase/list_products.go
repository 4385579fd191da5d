package usecase

import (
	"context"

	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
	"github.com/ezekielbrioso/Florish/src/catalog/domain/port"
)

// ListProductsUseCase consulta el catálogo del shop
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Bouquets retorna los ramos prearmados del shop
func (uc *ListProductsUseCase) Bouquets(ctx context.Context) ([]entity.Product, error) {
	return uc.productRepo.FindBouquets(ctx)
}

// OccasionProducts retorna los ramos temáticos por ocasión
func (uc *ListProductsUseCase) OccasionProducts(ctx context.Context) ([]entity.OccasionProduct, error) {
	return uc.productRepo.FindOccasionProducts(ctx)
}
