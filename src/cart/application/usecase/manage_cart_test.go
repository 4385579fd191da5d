package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	builderentity "github.com/ezekielbrioso/Florish/src/builder/domain/entity"
	"github.com/ezekielbrioso/Florish/src/cart/application/request"
	"github.com/ezekielbrioso/Florish/src/cart/infrastructure/adapter"
	"github.com/ezekielbrioso/Florish/src/cart/infrastructure/store"
)

func addItemRequest(lineID, price string, quantity int) *request.AddItemRequest {
	return &request.AddItemRequest{
		LineID:    lineID,
		Name:      "Item " + lineID,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  quantity,
	}
}

func TestManageCart_AddMergesAndDefaultsQuantity(t *testing.T) {
	uc := NewManageCartUseCase(store.NewCartMemoryRepository())

	// Sin cantidad explícita se agrega 1
	cart, err := uc.AddItem("ana@example.com", addItemRequest("p-1", "10.00", 0))
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = uc.AddItem("ana@example.com", addItemRequest("p-1", "10.00", 2))
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestManageCart_ConcurrentAddsOnSameUser(t *testing.T) {
	uc := NewManageCartUseCase(store.NewCartMemoryRepository())

	const workers = 4
	const addsPerWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsPerWorker; i++ {
				_, err := uc.AddItem("ana@example.com", addItemRequest("p-1", "10.00", 1))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	cart, err := uc.Get("ana@example.com")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, workers*addsPerWorker, cart.Items[0].Quantity)
}

func TestManageCart_CartPostRacingBuilderFinalize(t *testing.T) {
	repo := store.NewCartMemoryRepository()
	uc := NewManageCartUseCase(repo)
	sink := adapter.NewBuilderCartSink(repo)

	// El mismo usuario agrega del catálogo mientras el builder inserta
	// ramos finalizados en su carrito
	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := uc.AddItem("ana@example.com", addItemRequest("p-1", "10.00", 1))
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			composite := &builderentity.CompositeLineItem{
				ID:          fmt.Sprintf("custom-%d", i),
				DisplayName: builderentity.CompositeDisplayName,
				Category:    builderentity.CompositeCategory,
				TotalPrice:  decimal.RequireFromString("60.00"),
				IsComposite: true,
			}
			assert.NoError(t, sink.Insert(context.Background(), "ana@example.com", composite))
		}
	}()
	wg.Wait()

	cart, err := uc.Get("ana@example.com")
	require.NoError(t, err)

	// Las líneas del catálogo se fusionan; los compuestos con id fresco no
	assert.Equal(t, rounds*2, cart.Totals.ItemCount)
}
