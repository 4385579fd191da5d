package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezekielbrioso/Florish/src/builder/application/request"
	"github.com/ezekielbrioso/Florish/src/builder/application/usecase"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
)

// BuilderController maneja las peticiones HTTP del wizard Build-A-Bouquet
type BuilderController struct {
	startSessionUC    *usecase.StartSessionUseCase
	getSessionUC      *usecase.GetSessionUseCase
	selectCategoryUC  *usecase.SelectCategoryUseCase
	updateSelectionUC *usecase.UpdateSelectionUseCase
	finalizeUC        *usecase.FinalizeBouquetUseCase
	resetSessionUC    *usecase.ResetSessionUseCase
}

// NewBuilderController crea una nueva instancia del controlador
func NewBuilderController(
	startSessionUC *usecase.StartSessionUseCase,
	getSessionUC *usecase.GetSessionUseCase,
	selectCategoryUC *usecase.SelectCategoryUseCase,
	updateSelectionUC *usecase.UpdateSelectionUseCase,
	finalizeUC *usecase.FinalizeBouquetUseCase,
	resetSessionUC *usecase.ResetSessionUseCase,
) *BuilderController {
	return &BuilderController{
		startSessionUC:    startSessionUC,
		getSessionUC:      getSessionUC,
		selectCategoryUC:  selectCategoryUC,
		updateSelectionUC: updateSelectionUC,
		finalizeUC:        finalizeUC,
		resetSessionUC:    resetSessionUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *BuilderController) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/build/sessions")
	{
		sessions.POST("", c.StartSession)
		sessions.GET("/:session_id", c.GetSession)
		sessions.PUT("/:session_id/category", c.SelectCategory)
		sessions.POST("/:session_id/selections/base", c.ToggleBase)
		sessions.POST("/:session_id/selections/focal", c.IncrementFocal)
		sessions.POST("/:session_id/selections/filler", c.IncrementFiller)
		sessions.DELETE("/:session_id/selections/focal/:item_id", c.DecrementFocal)
		sessions.DELETE("/:session_id/selections/filler/:item_id", c.DecrementFiller)
		sessions.PUT("/:session_id/selections/wrapper", c.SetWrapper)
		sessions.PUT("/:session_id/selections/ribbon", c.SetRibbon)
		sessions.PUT("/:session_id/selections/card", c.SetCard)
		sessions.POST("/:session_id/finalize", c.Finalize)
		sessions.POST("/:session_id/reset", c.Reset)
	}

	log.Println("Rutas Builder disponibles:")
	log.Println("  POST   /api/v1/build/sessions  ⭐ (Build-A-Bouquet)")
	log.Println("  GET    /api/v1/build/sessions/:session_id")
	log.Println("  PUT    /api/v1/build/sessions/:session_id/category")
	log.Println("  POST   /api/v1/build/sessions/:session_id/selections/{base|focal|filler}")
	log.Println("  DELETE /api/v1/build/sessions/:session_id/selections/{focal|filler}/:item_id")
	log.Println("  PUT    /api/v1/build/sessions/:session_id/selections/{wrapper|ribbon|card}")
	log.Println("  POST   /api/v1/build/sessions/:session_id/finalize")
	log.Println("  POST   /api/v1/build/sessions/:session_id/reset")
}

// StartSession arranca una corrida nueva del wizard
func (c *BuilderController) StartSession(ctx *gin.Context) {
	session, err := c.startSessionUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error starting builder session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, session)
}

// GetSession retorna el estado completo de la sesión
func (c *BuilderController) GetSession(ctx *gin.Context) {
	session, err := c.getSessionUC.Execute(ctx.Param("session_id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// SelectCategory cambia la categoría activa del wizard
func (c *BuilderController) SelectCategory(ctx *gin.Context) {
	var req request.SelectCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.selectCategoryUC.Execute(ctx.Request.Context(), ctx.Param("session_id"), req.Category)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// ToggleBase alterna una flor base
func (c *BuilderController) ToggleBase(ctx *gin.Context) {
	var req request.SelectItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.updateSelectionUC.ToggleBase(ctx.Param("session_id"), req.ItemID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// IncrementFocal suma una unidad de una flor focal
func (c *BuilderController) IncrementFocal(ctx *gin.Context) {
	c.incrementFlower(ctx, entity.CategoryFocal)
}

// IncrementFiller suma una unidad de una flor de relleno
func (c *BuilderController) IncrementFiller(ctx *gin.Context) {
	c.incrementFlower(ctx, entity.CategoryFiller)
}

func (c *BuilderController) incrementFlower(ctx *gin.Context, category entity.Category) {
	var req request.SelectItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.updateSelectionUC.IncrementFlower(ctx.Param("session_id"), category, req.ItemID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// DecrementFocal resta una unidad de una flor focal
func (c *BuilderController) DecrementFocal(ctx *gin.Context) {
	c.decrementFlower(ctx, entity.CategoryFocal)
}

// DecrementFiller resta una unidad de una flor de relleno
func (c *BuilderController) DecrementFiller(ctx *gin.Context) {
	c.decrementFlower(ctx, entity.CategoryFiller)
}

func (c *BuilderController) decrementFlower(ctx *gin.Context, category entity.Category) {
	session, err := c.updateSelectionUC.DecrementFlower(ctx.Param("session_id"), category, ctx.Param("item_id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// SetWrapper elige el papel de envoltura
func (c *BuilderController) SetWrapper(ctx *gin.Context) {
	var req request.SelectItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.updateSelectionUC.SetWrapper(ctx.Param("session_id"), req.ItemID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// SetRibbon elige la cinta
func (c *BuilderController) SetRibbon(ctx *gin.Context) {
	var req request.SelectItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.updateSelectionUC.SetRibbon(ctx.Param("session_id"), req.ItemID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// SetCard elige la tarjeta con su mensaje
func (c *BuilderController) SetCard(ctx *gin.Context) {
	var req request.SelectCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.updateSelectionUC.SetCard(ctx.Param("session_id"), req.ItemID, req.Message)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// Finalize congela el ramo y lo agrega al carrito del usuario
func (c *BuilderController) Finalize(ctx *gin.Context) {
	var req request.FinalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.finalizeUC.Execute(ctx.Request.Context(), ctx.Param("session_id"), req.UserEmail)
	if err != nil {
		var validation *entity.ValidationError
		switch {
		case errors.As(err, &validation):
			// Requisitos incompletos: mensaje accionable, no fatal
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Please complete required selections",
				"missing": validation.Missing,
			})
		case errors.Is(err, entity.ErrSessionNotFound), errors.Is(err, entity.ErrSessionFinalized):
			c.renderError(ctx, err)
		default:
			// Falla interna al insertar en el carrito, no culpa del cliente
			log.Printf("Error finalizing bouquet: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add bouquet to cart"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// Reset limpia el wizard tras un add-to-cart exitoso
func (c *BuilderController) Reset(ctx *gin.Context) {
	session, err := c.resetSessionUC.Execute(ctx.Param("session_id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// renderError mapea errores de dominio a status HTTP
func (c *BuilderController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Builder session not found"})
	case errors.Is(err, entity.ErrItemNotInCatalog):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found in the loaded catalog"})
	case errors.Is(err, entity.ErrSessionFinalized):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Session already finalized; reset to build another bouquet"})
	case errors.Is(err, entity.ErrItemWrongCategory):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error in builder request: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
