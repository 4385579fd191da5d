package entity

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flowerItem(id string, category Category, price string, maxQty int) CatalogItem {
	return CatalogItem{
		ID:          id,
		Name:        "Flower " + id,
		UnitPrice:   decimal.RequireFromString(price),
		Category:    category,
		MaxQuantity: maxQty,
	}
}

func TestToggleBaseFlower_AddAndRemove(t *testing.T) {
	ledger := NewSelectionLedger()
	rose := flowerItem("base-1", CategoryBase, "20.00", 0)

	assert.True(t, ledger.ToggleBaseFlower(rose))
	assert.Equal(t, []string{"base-1"}, ledger.BaseFlowerIDs())

	// El segundo toggle del mismo item lo quita
	assert.True(t, ledger.ToggleBaseFlower(rose))
	assert.Empty(t, ledger.BaseFlowerIDs())
}

func TestToggleBaseFlower_CapAtTwo(t *testing.T) {
	ledger := NewSelectionLedger()
	ledger.ToggleBaseFlower(flowerItem("base-1", CategoryBase, "20.00", 0))
	ledger.ToggleBaseFlower(flowerItem("base-2", CategoryBase, "22.00", 0))

	// Un tercer base distinto se rechaza en silencio
	changed := ledger.ToggleBaseFlower(flowerItem("base-3", CategoryBase, "25.00", 0))
	assert.False(t, changed)
	assert.Equal(t, []string{"base-1", "base-2"}, ledger.BaseFlowerIDs())

	// Quitar uno vuelve a abrir el cupo
	ledger.ToggleBaseFlower(flowerItem("base-1", CategoryBase, "20.00", 0))
	assert.True(t, ledger.ToggleBaseFlower(flowerItem("base-3", CategoryBase, "25.00", 0)))
}

func TestIncrementFocal_CapAtMaxQuantity(t *testing.T) {
	ledger := NewSelectionLedger()
	peony := flowerItem("focal-1", CategoryFocal, "15.00", 3)

	for i := 0; i < 3; i++ {
		assert.True(t, ledger.IncrementFocal(peony))
	}
	// En el tope el incremento es un no-op silencioso
	assert.False(t, ledger.IncrementFocal(peony))
	assert.Equal(t, 3, ledger.FocalQuantities()["focal-1"])
}

func TestIncrementFocal_DefaultMaxQuantity(t *testing.T) {
	ledger := NewSelectionLedger()
	peony := flowerItem("focal-1", CategoryFocal, "15.00", 0)

	for i := 0; i < DefaultMaxQuantity; i++ {
		require.True(t, ledger.IncrementFocal(peony))
	}
	assert.False(t, ledger.IncrementFocal(peony))
	assert.Equal(t, DefaultMaxQuantity, ledger.FocalQuantities()["focal-1"])
}

func TestDecrementFocal_RemovesKeyAtZero(t *testing.T) {
	ledger := NewSelectionLedger()
	peony := flowerItem("focal-1", CategoryFocal, "15.00", 5)

	ledger.IncrementFocal(peony)
	ledger.IncrementFocal(peony)
	require.Equal(t, 2, ledger.FocalQuantities()["focal-1"])

	assert.True(t, ledger.DecrementFocal("focal-1"))
	assert.Equal(t, 1, ledger.FocalQuantities()["focal-1"])

	// Bajar de 1 elimina la clave, no deja un cero
	assert.True(t, ledger.DecrementFocal("focal-1"))
	_, present := ledger.FocalQuantities()["focal-1"]
	assert.False(t, present)

	// Decrementar algo no seleccionado es un no-op
	assert.False(t, ledger.DecrementFocal("focal-1"))
}

func TestFillerQuantities_IndependentOfFocal(t *testing.T) {
	ledger := NewSelectionLedger()
	ledger.IncrementFocal(flowerItem("f-1", CategoryFocal, "15.00", 5))
	ledger.IncrementFiller(flowerItem("fl-1", CategoryFiller, "5.00", 5))
	ledger.IncrementFiller(flowerItem("fl-1", CategoryFiller, "5.00", 5))

	assert.Equal(t, map[string]int{"f-1": 1}, ledger.FocalQuantities())
	assert.Equal(t, map[string]int{"fl-1": 2}, ledger.FillerQuantities())
}

func TestSetWrapper_LastWriteWins(t *testing.T) {
	ledger := NewSelectionLedger()
	ledger.SetWrapper(flowerItem("wrap-1", CategoryWrapper, "5.00", 0))
	ledger.SetWrapper(flowerItem("wrap-2", CategoryWrapper, "7.00", 0))

	id, ok := ledger.WrapperID()
	require.True(t, ok)
	assert.Equal(t, "wrap-2", id)
}

func TestSetCard_TruncatesLongMessage(t *testing.T) {
	ledger := NewSelectionLedger()
	long := strings.Repeat("a", MaxCardMessageLength+50)

	ledger.SetCard(flowerItem("card-1", CategoryCard, "3.00", 0), long)

	card, ok := ledger.Card()
	require.True(t, ok)
	assert.Len(t, card.Message, MaxCardMessageLength)
}

func TestCanFinalize_RequiresBaseFocalWrapper(t *testing.T) {
	ledger := NewSelectionLedger()
	assert.False(t, ledger.CanFinalize())
	assert.Equal(t, []string{RequirementBaseFlowers, RequirementFocalFlowers, RequirementWrapper}, ledger.MissingRequirements())

	ledger.ToggleBaseFlower(flowerItem("base-1", CategoryBase, "20.00", 0))
	assert.Equal(t, []string{RequirementFocalFlowers, RequirementWrapper}, ledger.MissingRequirements())

	ledger.IncrementFocal(flowerItem("focal-1", CategoryFocal, "15.00", 5))
	ledger.SetWrapper(flowerItem("wrap-1", CategoryWrapper, "5.00", 0))

	assert.True(t, ledger.CanFinalize())
	assert.Empty(t, ledger.MissingRequirements())

	// Ribbon y card son opcionales, no cambian el resultado
	ledger.SetRibbon(flowerItem("rib-1", CategoryRibbon, "3.00", 0))
	assert.True(t, ledger.CanFinalize())
}

func TestReset_ClearsAllSelections(t *testing.T) {
	ledger := NewSelectionLedger()
	ledger.ToggleBaseFlower(flowerItem("base-1", CategoryBase, "20.00", 0))
	ledger.IncrementFocal(flowerItem("focal-1", CategoryFocal, "15.00", 5))
	ledger.IncrementFiller(flowerItem("fill-1", CategoryFiller, "5.00", 5))
	ledger.SetWrapper(flowerItem("wrap-1", CategoryWrapper, "5.00", 0))
	ledger.SetRibbon(flowerItem("rib-1", CategoryRibbon, "3.00", 0))
	ledger.SetCard(flowerItem("card-1", CategoryCard, "3.00", 0), "hola")

	ledger.Reset()

	assert.Empty(t, ledger.BaseFlowerIDs())
	assert.Empty(t, ledger.FocalQuantities())
	assert.Empty(t, ledger.FillerQuantities())
	_, hasWrapper := ledger.WrapperID()
	assert.False(t, hasWrapper)
	_, hasRibbon := ledger.RibbonID()
	assert.False(t, hasRibbon)
	_, hasCard := ledger.Card()
	assert.False(t, hasCard)
	assert.False(t, ledger.CanFinalize())
}
