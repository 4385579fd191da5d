package usecase

import (
	"github.com/ezekielbrioso/Florish/src/cart/application/request"
	"github.com/ezekielbrioso/Florish/src/cart/application/response"
	"github.com/ezekielbrioso/Florish/src/cart/domain/entity"
	"github.com/ezekielbrioso/Florish/src/cart/domain/port"
)

// ManageCartUseCase opera el carrito de un usuario
type ManageCartUseCase struct {
	cartRepo port.CartRepository
}

// NewManageCartUseCase crea una nueva instancia del caso de uso
func NewManageCartUseCase(cartRepo port.CartRepository) *ManageCartUseCase {
	return &ManageCartUseCase{
		cartRepo: cartRepo,
	}
}

// Get retorna el carrito del usuario con sus totales
func (uc *ManageCartUseCase) Get(userEmail string) (*response.CartResponse, error) {
	cart, err := uc.cartRepo.GetOrCreate(userEmail)
	if err != nil {
		return nil, err
	}

	cart.Lock()
	defer cart.Unlock()

	return response.NewCartResponse(cart), nil
}

// AddItem agrega un producto del catálogo (merge por line_id)
func (uc *ManageCartUseCase) AddItem(userEmail string, req *request.AddItemRequest) (*response.CartResponse, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item, err := entity.NewCartItem(req.LineID, req.Name, req.UnitPrice, quantity)
	if err != nil {
		return nil, err
	}
	item.Category = req.Category
	item.Color = req.Color
	item.Occasion = req.Occasion
	item.ImageURL = req.ImageURL

	cart, err := uc.cartRepo.GetOrCreate(userEmail)
	if err != nil {
		return nil, err
	}

	cart.Lock()
	defer cart.Unlock()

	cart.Add(*item)
	uc.cartRepo.Save(cart)

	return response.NewCartResponse(cart), nil
}

// UpdateQuantity fija la cantidad de una línea (menos de 1 la elimina)
func (uc *ManageCartUseCase) UpdateQuantity(userEmail, lineID string, quantity int) (*response.CartResponse, error) {
	cart, err := uc.cartRepo.GetOrCreate(userEmail)
	if err != nil {
		return nil, err
	}

	cart.Lock()
	defer cart.Unlock()

	if err := cart.UpdateQuantity(lineID, quantity); err != nil {
		return nil, err
	}
	uc.cartRepo.Save(cart)

	return response.NewCartResponse(cart), nil
}

// RemoveItem elimina una línea del carrito
func (uc *ManageCartUseCase) RemoveItem(userEmail, lineID string) (*response.CartResponse, error) {
	cart, err := uc.cartRepo.GetOrCreate(userEmail)
	if err != nil {
		return nil, err
	}

	cart.Lock()
	defer cart.Unlock()

	if err := cart.Remove(lineID); err != nil {
		return nil, err
	}
	uc.cartRepo.Save(cart)

	return response.NewCartResponse(cart), nil
}

// Clear vacía el carrito del usuario
func (uc *ManageCartUseCase) Clear(userEmail string) (*response.CartResponse, error) {
	cart, err := uc.cartRepo.GetOrCreate(userEmail)
	if err != nil {
		return nil, err
	}

	cart.Lock()
	defer cart.Unlock()

	cart.Clear()
	uc.cartRepo.Save(cart)

	return response.NewCartResponse(cart), nil
}
