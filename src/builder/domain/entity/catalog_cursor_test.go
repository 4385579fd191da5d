package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCursor_StartsAtBaseLoading(t *testing.T) {
	cursor := NewCatalogCursor()

	assert.Equal(t, CategoryBase, cursor.Active())
	assert.True(t, cursor.Loading())
	assert.Empty(t, cursor.Items())
}

func TestCatalogCursor_ApplyForActiveCategory(t *testing.T) {
	cursor := NewCatalogCursor()
	items := []CatalogItem{flowerItem("base-1", CategoryBase, "20.00", 0)}

	applied := cursor.Apply(CategoryBase, items, nil)

	require.True(t, applied)
	assert.False(t, cursor.Loading())
	assert.False(t, cursor.FetchFailed())
	assert.Equal(t, items, cursor.Items())
}

func TestCatalogCursor_StaleFetchDiscarded(t *testing.T) {
	cursor := NewCatalogCursor()
	cursor.Switch(CategoryWrapper)

	// Llega tarde la respuesta de base, ya abandonada
	stale := []CatalogItem{flowerItem("base-1", CategoryBase, "20.00", 0)}
	applied := cursor.Apply(CategoryBase, stale, nil)

	assert.False(t, applied)
	assert.Empty(t, cursor.Items())
	assert.True(t, cursor.Loading())

	// La respuesta de la categoría vigente sí se aplica
	wrappers := []CatalogItem{flowerItem("wrap-1", CategoryWrapper, "10.00", 0)}
	require.True(t, cursor.Apply(CategoryWrapper, wrappers, nil))
	assert.Equal(t, wrappers, cursor.Items())
}

func TestCatalogCursor_FetchFailureLeavesEmptyListWithFlag(t *testing.T) {
	cursor := NewCatalogCursor()

	applied := cursor.Apply(CategoryBase, nil, errors.New("catalog down"))

	require.True(t, applied)
	assert.True(t, cursor.FetchFailed())
	assert.Empty(t, cursor.Items())
	assert.False(t, cursor.Loading())

	// Cambiar de categoría limpia el flag de error
	cursor.Switch(CategoryFocal)
	assert.False(t, cursor.FetchFailed())
}

func TestCatalogCursor_SwitchDiscardsPreviousItems(t *testing.T) {
	cursor := NewCatalogCursor()
	cursor.Apply(CategoryBase, []CatalogItem{flowerItem("base-1", CategoryBase, "20.00", 0)}, nil)

	cursor.Switch(CategoryFocal)

	assert.Equal(t, CategoryFocal, cursor.Active())
	assert.Empty(t, cursor.Items())
	assert.True(t, cursor.Loading())
}
