package adapter

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	builderentity "github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/cart/infrastructure/store"
)

func sampleComposite(id string) *builderentity.CompositeLineItem {
	return &builderentity.CompositeLineItem{
		ID:          id,
		DisplayName: builderentity.CompositeDisplayName,
		Category:    builderentity.CompositeCategory,
		TotalPrice:  decimal.RequireFromString("60.00"),
		ImageURL:    builderentity.DefaultCompositeImageURL,
		IsComposite: true,
		Components: builderentity.BouquetComponents{
			BaseFlowers: []builderentity.ComponentSnapshot{
				{Name: "Rosas", Price: decimal.RequireFromString("20.00"), Color: "rojo"},
			},
			FocalFlowers: []builderentity.ComponentSnapshot{
				{Name: "Peonías", Price: decimal.RequireFromString("15.00"), Quantity: 2},
			},
			Wrapper: &builderentity.ComponentSnapshot{
				Name: "Kraft", Price: decimal.RequireFromString("10.00"),
			},
		},
	}
}

func TestBuilderCartSink_InsertsCompositeLine(t *testing.T) {
	repo := store.NewCartMemoryRepository()
	sink := NewBuilderCartSink(repo)

	err := sink.Insert(context.Background(), "ana@example.com", sampleComposite("custom-1"))
	require.NoError(t, err)

	cart, err := repo.GetOrCreate("ana@example.com")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	line := cart.Items[0]
	assert.Equal(t, "custom-1", line.LineID)
	assert.Equal(t, builderentity.CompositeDisplayName, line.Name)
	assert.Equal(t, builderentity.CompositeCategory, line.Category)
	assert.True(t, line.IsComposite)
	assert.Equal(t, 1, line.Quantity)
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("60.00")))

	// El snapshot viaja dentro de la línea, legible como JSON
	var components builderentity.BouquetComponents
	require.NoError(t, json.Unmarshal(line.Details, &components))
	require.Len(t, components.BaseFlowers, 1)
	assert.Equal(t, "Rosas", components.BaseFlowers[0].Name)
	require.NotNil(t, components.Wrapper)
	assert.Nil(t, components.Ribbon)
}

func TestBuilderCartSink_DistinctCompositesStayAsSeparateLines(t *testing.T) {
	repo := store.NewCartMemoryRepository()
	sink := NewBuilderCartSink(repo)
	ctx := context.Background()

	require.NoError(t, sink.Insert(ctx, "ana@example.com", sampleComposite("custom-1")))
	require.NoError(t, sink.Insert(ctx, "ana@example.com", sampleComposite("custom-2")))

	cart, err := repo.GetOrCreate("ana@example.com")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Count())
}
