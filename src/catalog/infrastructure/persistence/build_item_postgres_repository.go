package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
)

// BuildItemPostgresRepository implementa BuildItemRepository usando PostgreSQL
type BuildItemPostgresRepository struct {
	db *sql.DB
}

// NewBuildItemPostgresRepository crea una nueva instancia del repositorio
func NewBuildItemPostgresRepository(db *sql.DB) *BuildItemPostgresRepository {
	return &BuildItemPostgresRepository{
		db: db,
	}
}

const buildItemColumns = `
	id, name, category,
	COALESCE(type, ''), COALESCE(color, ''),
	price, COALESCE(image_url, ''), stock,
	COALESCE(max_quantity, 0), COALESCE(description, '')
`

// FindAll retorna todos los items de armado
func (r *BuildItemPostgresRepository) FindAll(ctx context.Context) ([]entity.BuildItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM build_items ORDER BY name`, buildItemColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying build items: %w", err)
	}
	defer rows.Close()

	return scanBuildItems(rows)
}

// FindByCategory retorna los items de una categoría (wrapper, ribbon, card)
func (r *BuildItemPostgresRepository) FindByCategory(ctx context.Context, category entity.BuildItemCategory) ([]entity.BuildItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM build_items WHERE category = $1 ORDER BY name`, buildItemColumns)

	rows, err := r.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("error querying build items by category: %w", err)
	}
	defer rows.Close()

	return scanBuildItems(rows)
}

// FindFlowersByType retorna las flores de un tipo (base, focal, filler)
func (r *BuildItemPostgresRepository) FindFlowersByType(ctx context.Context, flowerType entity.FlowerType) ([]entity.BuildItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM build_items WHERE category = $1 AND type = $2 ORDER BY name`, buildItemColumns)

	rows, err := r.db.QueryContext(ctx, query, string(entity.BuildItemFlower), string(flowerType))
	if err != nil {
		return nil, fmt.Errorf("error querying flowers by type: %w", err)
	}
	defer rows.Close()

	return scanBuildItems(rows)
}

func scanBuildItems(rows *sql.Rows) ([]entity.BuildItem, error) {
	var items []entity.BuildItem
	for rows.Next() {
		var item entity.BuildItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Type,
			&item.Color,
			&item.Price,
			&item.ImageURL,
			&item.Stock,
			&item.MaxQuantity,
			&item.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning build item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating build items: %w", err)
	}

	return items, nil
}
