package cache

import (
	"context"
	"database/sql"
	"log"
	"sync"

	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
	"github.com/ezekielbrioso/Florish/src/catalog/domain/port"
)

// BuildItemCache cache en memoria de los componentes del Build-A-Bouquet
// El catálogo de armado es chico y cambia poco: se precarga entero al
// boot y el wizard consulta siempre contra memoria
type BuildItemCache struct {
	items  []entity.BuildItem
	loaded bool
	mu     sync.RWMutex
}

// NewBuildItemCache crea un cache de items de armado vacío
func NewBuildItemCache() *BuildItemCache {
	return &BuildItemCache{}
}

// LoadFromDB precarga todos los items de armado desde la base de datos
func (c *BuildItemCache) LoadFromDB(db *sql.DB) error {
	log.Println("🔄 Loading build items into cache...")

	query := `
		SELECT id, name, category,
		       COALESCE(type, ''), COALESCE(color, ''),
		       price, COALESCE(image_url, ''), stock,
		       COALESCE(max_quantity, 0), COALESCE(description, '')
		FROM build_items
		ORDER BY name
	`

	rows, err := db.Query(query)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load build items: %v", err)
		log.Println("⚠️  Continuing without build item cache")
		return err
	}
	defer rows.Close()

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
			log.Printf("⚠️  Error scanning build item: %v", err)
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.mu.Unlock()

	log.Printf("✅ Loaded %d build items into cache", len(items))
	return nil
}

// Loaded indica si el cache tiene una precarga vigente
func (c *BuildItemCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// All retorna todos los items cacheados
func (c *BuildItemCache) All() []entity.BuildItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.BuildItem, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory filtra los items cacheados por categoría
func (c *BuildItemCache) ByCategory(category entity.BuildItemCategory) []entity.BuildItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []entity.BuildItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// FlowersByType filtra las flores cacheadas por tipo
func (c *BuildItemCache) FlowersByType(flowerType entity.FlowerType) []entity.BuildItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []entity.BuildItem
	for _, item := range c.items {
		if item.Category == entity.BuildItemFlower && item.Type == flowerType {
			out = append(out, item)
		}
	}
	return out
}

// CachedBuildItemRepository sirve lecturas desde el cache precargado y
// delega en el repositorio real mientras el cache no esté listo
type CachedBuildItemRepository struct {
	cache *BuildItemCache
	repo  port.BuildItemRepository
}

// NewCachedBuildItemRepository decora un BuildItemRepository con el cache
func NewCachedBuildItemRepository(cache *BuildItemCache, repo port.BuildItemRepository) *CachedBuildItemRepository {
	return &CachedBuildItemRepository{
		cache: cache,
		repo:  repo,
	}
}

// FindAll retorna todos los items de armado
func (r *CachedBuildItemRepository) FindAll(ctx context.Context) ([]entity.BuildItem, error) {
	if r.cache.Loaded() {
		return r.cache.All(), nil
	}
	return r.repo.FindAll(ctx)
}

// FindByCategory retorna los items de una categoría
func (r *CachedBuildItemRepository) FindByCategory(ctx context.Context, category entity.BuildItemCategory) ([]entity.BuildItem, error) {
	if r.cache.Loaded() {
		return r.cache.ByCategory(category), nil
	}
	return r.repo.FindByCategory(ctx, category)
}

// FindFlowersByType retorna las flores de un tipo
func (r *CachedBuildItemRepository) FindFlowersByType(ctx context.Context, flowerType entity.FlowerType) ([]entity.BuildItem, error) {
	if r.cache.Loaded() {
		return r.cache.FlowersByType(flowerType), nil
	}
	return r.repo.FindFlowersByType(ctx, flowerType)
}
