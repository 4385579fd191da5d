package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// FindBouquets retorna los ramos prearmados del shop (category = bouquet)
func (r *ProductPostgresRepository) FindBouquets(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, name, category,
		       COALESCE(type, ''), COALESCE(color, ''),
		       price, COALESCE(image_url, ''), stock,
		       COALESCE(occasion, ''), COALESCE(description, '')
		FROM products
		WHERE category = 'bouquet'
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying bouquets: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Type,
			&p.Color,
			&p.Price,
			&p.ImageURL,
			&p.Stock,
			&p.Occasion,
			&p.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindOccasionProducts retorna los ramos temáticos por ocasión
func (r *ProductPostgresRepository) FindOccasionProducts(ctx context.Context) ([]entity.OccasionProduct, error) {
	query := `
		SELECT id, name, COALESCE(occasion, ''),
		       COALESCE(description, ''), price,
		       COALESCE(image_url, ''), stock
		FROM occasion_products
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying occasion products: %w", err)
	}
	defer rows.Close()

	var products []entity.OccasionProduct
	for rows.Next() {
		var p entity.OccasionProduct
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Occasion,
			&p.Description,
			&p.Price,
			&p.ImageURL,
			&p.Stock,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning occasion product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occasion products: %w", err)
	}

	return products, nil
}

// Save inserta un producto nuevo del catálogo
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, name, category, type, color, price, image_url, stock, occasion, description
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Type,
		product.Color,
		product.Price,
		product.ImageURL,
		product.Stock,
		product.Occasion,
		product.Description,
	)
	if err != nil {
		return fmt.Errorf("error saving product: %w", err)
	}

	return nil
}
