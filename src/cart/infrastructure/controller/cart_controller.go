package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ezekielbrioso/Florish/src/cart/application/request"
	"github.com/ezekielbrioso/Florish/src/cart/application/usecase"
	"github.com/ezekielbrioso/Florish/src/cart/domain/entity"
)

// CartController maneja las peticiones HTTP del carrito
// El carrito se identifica por el header X-User-Email
type CartController struct {
	manageCartUC *usecase.ManageCartUseCase
}

// NewCartController crea una nueva instancia del controlador
func NewCartController(manageCartUC *usecase.ManageCartUseCase) *CartController {
	return &CartController{
		manageCartUC: manageCartUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CartController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.POST("", c.AddItem)
		cart.PUT("/items/:line_id", c.UpdateQuantity)
		cart.DELETE("/items/:line_id", c.RemoveItem)
		cart.DELETE("", c.ClearCart)
	}

	log.Println("Rutas Cart disponibles:")
	log.Println("  GET    /api/v1/cart")
	log.Println("  POST   /api/v1/cart")
	log.Println("  PUT    /api/v1/cart/items/:line_id")
	log.Println("  DELETE /api/v1/cart/items/:line_id")
	log.Println("  DELETE /api/v1/cart")
}

// userEmail valida el header obligatorio X-User-Email
func (c *CartController) userEmail(ctx *gin.Context) (string, bool) {
	email := ctx.GetHeader("X-User-Email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-User-Email header is required"})
		return "", false
	}
	return email, true
}

// GetCart retorna el carrito del usuario con sus totales
func (c *CartController) GetCart(ctx *gin.Context) {
	email, ok := c.userEmail(ctx)
	if !ok {
		return
	}

	cart, err := c.manageCartUC.Get(email)
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// AddItem agrega un producto del catálogo al carrito
func (c *CartController) AddItem(ctx *gin.Context) {
	email, ok := c.userEmail(ctx)
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := c.manageCartUC.AddItem(email, &req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// UpdateQuantity fija la cantidad de una línea del carrito
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	email, ok := c.userEmail(ctx)
	if !ok {
		return
	}

	var req request.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// Permitir quantity por query param como fallback
		if q, convErr := strconv.Atoi(ctx.Query("quantity")); convErr == nil {
			req.Quantity = q
		} else {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	cart, err := c.manageCartUC.UpdateQuantity(email, ctx.Param("line_id"), req.Quantity)
	if err != nil {
		if errors.Is(err, entity.ErrCartItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		log.Printf("Error updating cart quantity: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// RemoveItem elimina una línea del carrito
func (c *CartController) RemoveItem(ctx *gin.Context) {
	email, ok := c.userEmail(ctx)
	if !ok {
		return
	}

	cart, err := c.manageCartUC.RemoveItem(email, ctx.Param("line_id"))
	if err != nil {
		if errors.Is(err, entity.ErrCartItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		log.Printf("Error removing cart item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// ClearCart vacía el carrito del usuario
func (c *CartController) ClearCart(ctx *gin.Context) {
	email, ok := c.userEmail(ctx)
	if !ok {
		return
	}

	cart, err := c.manageCartUC.Clear(email)
	if err != nil {
		log.Printf("Error clearing cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}
