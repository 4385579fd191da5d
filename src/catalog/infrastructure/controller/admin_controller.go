package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezekielbrioso/Florish/src/catalog/application/request"
	"github.com/ezekielbrioso/Florish/src/catalog/application/usecase"
	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
	"github.com/ezekielbrioso/Florish/src/shared/infrastructure/middleware"
)

// AdminController maneja las operaciones de administración del catálogo
type AdminController struct {
	createProductUC *usecase.CreateProductUseCase
}

// NewAdminController crea una nueva instancia del controlador
func NewAdminController(createProductUC *usecase.CreateProductUseCase) *AdminController {
	return &AdminController{
		createProductUC: createProductUC,
	}
}

// RegisterRoutes registra las rutas admin protegidas por AdminOnly
func (c *AdminController) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AdminOnly())
	{
		admin.POST("/products", c.CreateProduct)
	}

	log.Println("Rutas Admin disponibles:")
	log.Println("  POST   /api/v1/admin/products  (admin only)")
}

// CreateProduct alta de producto del catálogo
func (c *AdminController) CreateProduct(ctx *gin.Context) {
	if c.createProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product creation not available (database not configured)",
		})
		return
	}

	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrNameRequired) || errors.Is(err, entity.ErrInvalidPrice) || errors.Is(err, entity.ErrInvalidCategory) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create product",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}
