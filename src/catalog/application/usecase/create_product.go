package usecase

import (
	"context"
	"fmt"

	"github.com/ezekielbrioso/Florish/src/catalog/application/request"
	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
	"github.com/ezekielbrioso/Florish/src/catalog/domain/port"
)

// CreateProductUseCase alta de productos desde el panel de administración
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute valida el request, construye el producto y lo persiste
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(req.Name, req.Category, req.Price)
	if err != nil {
		return nil, err
	}

	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.Stock = req.Stock
	product.Occasion = req.Occasion
	product.Color = req.Color

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	return product, nil
}
