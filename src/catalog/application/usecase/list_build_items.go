package usecase

import (
	"context"
	"fmt"

	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
	"github.com/ezekielbrioso/Florish/src/catalog/domain/port"
)

// ListBuildItemsUseCase consulta los componentes del Build-A-Bouquet
type ListBuildItemsUseCase struct {
	buildItemRepo port.BuildItemRepository
}

// NewListBuildItemsUseCase crea una nueva instancia del caso de uso
func NewListBuildItemsUseCase(buildItemRepo port.BuildItemRepository) *ListBuildItemsUseCase {
	return &ListBuildItemsUseCase{
		buildItemRepo: buildItemRepo,
	}
}

// All retorna todos los items de armado
func (uc *ListBuildItemsUseCase) All(ctx context.Context) ([]entity.BuildItem, error) {
	return uc.buildItemRepo.FindAll(ctx)
}

// ByCategory retorna los items de una categoría (wrapper, ribbon, card)
func (uc *ListBuildItemsUseCase) ByCategory(ctx context.Context, category string) ([]entity.BuildItem, error) {
	switch entity.BuildItemCategory(category) {
	case entity.BuildItemFlower, entity.BuildItemWrapper, entity.BuildItemRibbon, entity.BuildItemCard:
		return uc.buildItemRepo.FindByCategory(ctx, entity.BuildItemCategory(category))
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidCategory, category)
	}
}

// FlowersByType retorna las flores de un tipo (base, focal, filler)
func (uc *ListBuildItemsUseCase) FlowersByType(ctx context.Context, flowerType string) ([]entity.BuildItem, error) {
	switch entity.FlowerType(flowerType) {
	case entity.FlowerTypeBase, entity.FlowerTypeFocal, entity.FlowerTypeFiller:
		return uc.buildItemRepo.FindFlowersByType(ctx, entity.FlowerType(flowerType))
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidFlowerType, flowerType)
	}
}
