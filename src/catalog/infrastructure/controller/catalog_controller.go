package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezekielbrioso/Florish/src/catalog/application/usecase"
	"github.com/ezekielbrioso/Florish/src/catalog/domain/entity"
)

// CatalogController maneja las peticiones HTTP del catálogo público
type CatalogController struct {
	listBuildItemsUC *usecase.ListBuildItemsUseCase
	listProductsUC   *usecase.ListProductsUseCase
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(
	listBuildItemsUC *usecase.ListBuildItemsUseCase,
	listProductsUC *usecase.ListProductsUseCase,
) *CatalogController {
	return &CatalogController{
		listBuildItemsUC: listBuildItemsUC,
		listProductsUC:   listProductsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	buildItems := router.Group("/build-items")
	{
		buildItems.GET("", c.ListBuildItems)
		buildItems.GET("/category/:category", c.ListBuildItemsByCategory)
		buildItems.GET("/flowers/:type", c.ListFlowersByType)
	}

	router.GET("/products", c.ListProducts)
	router.GET("/occasion-products", c.ListOccasionProducts)

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/build-items")
	log.Println("  GET    /api/v1/build-items/category/:category")
	log.Println("  GET    /api/v1/build-items/flowers/:type")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/occasion-products")
}

// ListBuildItems lista todos los items de armado
func (c *CatalogController) ListBuildItems(ctx *gin.Context) {
	if c.listBuildItemsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	items, err := c.listBuildItemsUC.All(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing build items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// ListBuildItemsByCategory lista items por categoría (wrapper, ribbon, card)
func (c *CatalogController) ListBuildItemsByCategory(ctx *gin.Context) {
	if c.listBuildItemsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	items, err := c.listBuildItemsUC.ByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCategory) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error listing build items by category: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// ListFlowersByType lista flores por tipo (base, focal, filler)
func (c *CatalogController) ListFlowersByType(ctx *gin.Context) {
	if c.listBuildItemsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	items, err := c.listBuildItemsUC.FlowersByType(ctx.Request.Context(), ctx.Param("type"))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidFlowerType) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error listing flowers by type: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// ListProducts lista los ramos prearmados del shop
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	if c.listProductsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	products, err := c.listProductsUC.Bouquets(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// ListOccasionProducts lista los ramos temáticos por ocasión
func (c *CatalogController) ListOccasionProducts(ctx *gin.Context) {
	if c.listProductsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	products, err := c.listProductsUC.OccasionProducts(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing occasion products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, products)
}
