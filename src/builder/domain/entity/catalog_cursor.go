package entity

// CatalogCursor sigue la categoría activa del wizard y retiene los
// items comprables de esa categoría
// Los items se refrescan por completo en cada cambio de categoría,
// nunca de forma incremental
type CatalogCursor struct {
	active      Category
	items       []CatalogItem
	fetchFailed bool
	loading     bool
}

// NewCatalogCursor crea un cursor posicionado en el primer paso del wizard
func NewCatalogCursor() *CatalogCursor {
	return &CatalogCursor{active: CategoryBase, loading: true}
}

// Active retorna la categoría activa
func (c *CatalogCursor) Active() Category {
	return c.active
}

// Switch cambia la categoría activa y descarta los items anteriores
// mientras llega la respuesta del catálogo
func (c *CatalogCursor) Switch(category Category) {
	c.active = category
	c.items = nil
	c.fetchFailed = false
	c.loading = true
}

// Apply aplica el resultado de un fetch SOLO si su categoría de origen
// sigue siendo la activa: una respuesta tardía de una categoría ya
// abandonada se descarta en vez de pisar la lista vigente
// Un fetch fallido deja lista vacía + flag de error (sin reintentos)
func (c *CatalogCursor) Apply(origin Category, items []CatalogItem, fetchErr error) bool {
	if origin != c.active {
		return false
	}
	c.loading = false
	if fetchErr != nil {
		c.items = nil
		c.fetchFailed = true
		return true
	}
	c.items = items
	c.fetchFailed = false
	return true
}

// Items retorna los items de la categoría activa (vacío si el fetch falló)
func (c *CatalogCursor) Items() []CatalogItem {
	return c.items
}

// FetchFailed indica si el último fetch de la categoría activa falló
func (c *CatalogCursor) FetchFailed() bool {
	return c.fetchFailed
}

// Loading indica si hay un fetch pendiente para la categoría activa
func (c *CatalogCursor) Loading() bool {
	return c.loading
}
