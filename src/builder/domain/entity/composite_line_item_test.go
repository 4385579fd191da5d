package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullIndex arma un catálogo mínimo con un item por categoría
func fullIndex() CatalogIndex {
	index := NewCatalogIndex()
	index.Add(
		flowerItem("base-1", CategoryBase, "20.00", 0),
		flowerItem("focal-1", CategoryFocal, "15.00", 10),
		flowerItem("fill-1", CategoryFiller, "4.50", 10),
		flowerItem("wrap-1", CategoryWrapper, "10.00", 0),
		flowerItem("rib-1", CategoryRibbon, "3.00", 0),
		flowerItem("card-1", CategoryCard, "2.50", 0),
	)
	return index
}

func TestComputeTotal_SumsEverySlot(t *testing.T) {
	index := fullIndex()
	ledger := NewSelectionLedger()

	base, _ := index.Get("base-1")
	focal, _ := index.Get("focal-1")
	wrapper, _ := index.Get("wrap-1")

	ledger.ToggleBaseFlower(base)
	ledger.IncrementFocal(focal)
	ledger.IncrementFocal(focal)
	ledger.SetWrapper(wrapper)

	// 20.00 + 2 x 15.00 + 10.00
	total := ComputeTotal(ledger, index)
	assert.True(t, total.Equal(decimal.RequireFromString("60.00")), "total = %s", total)
}

func TestComputeTotal_UnresolvableIDContributesZero(t *testing.T) {
	index := fullIndex()
	ledger := NewSelectionLedger()

	ledger.ToggleBaseFlower(flowerItem("base-gone", CategoryBase, "99.00", 0))
	base, _ := index.Get("base-1")
	ledger.ToggleBaseFlower(base)

	total := ComputeTotal(ledger, index)
	assert.True(t, total.Equal(decimal.RequireFromString("20.00")), "total = %s", total)
}

func TestComputeTotal_FullPrecisionAccumulation(t *testing.T) {
	index := NewCatalogIndex()
	index.Add(flowerItem("focal-x", CategoryFocal, "0.1", 10))
	ledger := NewSelectionLedger()

	item, _ := index.Get("focal-x")
	for i := 0; i < 3; i++ {
		ledger.IncrementFocal(item)
	}

	// 0.1 x 3 es exactamente 0.3 en decimal, sin deriva binaria
	assert.True(t, ComputeTotal(ledger, index).Equal(decimal.RequireFromString("0.3")))
}

func TestNewCompositeLineItem_MissingRequirements(t *testing.T) {
	index := fullIndex()
	ledger := NewSelectionLedger()
	base, _ := index.Get("base-1")
	ledger.ToggleBaseFlower(base)

	item, err := NewCompositeLineItem(ledger, index)
	require.Nil(t, item)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{RequirementFocalFlowers, RequirementWrapper}, vErr.Missing)
}

func TestNewCompositeLineItem_FreezesSnapshots(t *testing.T) {
	index := fullIndex()
	ledger := NewSelectionLedger()

	base, _ := index.Get("base-1")
	focal, _ := index.Get("focal-1")
	wrapper, _ := index.Get("wrap-1")
	card, _ := index.Get("card-1")

	ledger.ToggleBaseFlower(base)
	ledger.IncrementFocal(focal)
	ledger.SetWrapper(wrapper)
	ledger.SetCard(card, "Feliz cumpleaños")

	item, err := NewCompositeLineItem(ledger, index)
	require.NoError(t, err)

	assert.Equal(t, CompositeDisplayName, item.DisplayName)
	assert.Equal(t, CompositeCategory, item.Category)
	assert.True(t, item.IsComposite)
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("47.50")))

	require.Len(t, item.Components.BaseFlowers, 1)
	assert.True(t, item.Components.BaseFlowers[0].Price.Equal(decimal.RequireFromString("20.00")))
	require.NotNil(t, item.Components.Card)
	assert.Equal(t, "Feliz cumpleaños", item.Components.Card.Message)
	assert.Nil(t, item.Components.Ribbon)

	// Editar el catálogo después no toca el snapshot congelado
	index.Add(flowerItem("base-1", CategoryBase, "999.00", 0))
	assert.True(t, item.Components.BaseFlowers[0].Price.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("47.50")))
}

func TestNewCompositeLineItem_FreshIDPerFinalize(t *testing.T) {
	index := fullIndex()
	ledger := NewSelectionLedger()

	base, _ := index.Get("base-1")
	focal, _ := index.Get("focal-1")
	wrapper, _ := index.Get("wrap-1")
	ledger.ToggleBaseFlower(base)
	ledger.IncrementFocal(focal)
	ledger.SetWrapper(wrapper)

	first, err := NewCompositeLineItem(ledger, index)
	require.NoError(t, err)
	second, err := NewCompositeLineItem(ledger, index)
	require.NoError(t, err)

	// Mismos componentes y total, pero ids siempre distintos
	assert.True(t, first.TotalPrice.Equal(second.TotalPrice))
	assert.Equal(t, first.Components, second.Components)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewCompositeLineItem_WrapperImageOverridesDefault(t *testing.T) {
	index := fullIndex()
	withImage := flowerItem("wrap-img", CategoryWrapper, "8.00", 0)
	withImage.ImageURL = "/images/kraft.jpg"
	index.Add(withImage)

	ledger := NewSelectionLedger()
	base, _ := index.Get("base-1")
	focal, _ := index.Get("focal-1")
	ledger.ToggleBaseFlower(base)
	ledger.IncrementFocal(focal)

	ledger.SetWrapper(withImage)
	item, err := NewCompositeLineItem(ledger, index)
	require.NoError(t, err)
	assert.Equal(t, "/images/kraft.jpg", item.ImageURL)

	wrapper, _ := index.Get("wrap-1")
	ledger.SetWrapper(wrapper)
	item, err = NewCompositeLineItem(ledger, index)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompositeImageURL, item.ImageURL)
}
