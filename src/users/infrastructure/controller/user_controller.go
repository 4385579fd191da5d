package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezekielbrioso/Florish/src/users/application/request"
	"github.com/ezekielbrioso/Florish/src/users/application/usecase"
)

// UserController maneja las peticiones HTTP de usuarios
type UserController struct {
	loginUserUC *usecase.LoginUserUseCase
}

// NewUserController crea una nueva instancia del controlador
func NewUserController(loginUserUC *usecase.LoginUserUseCase) *UserController {
	return &UserController{
		loginUserUC: loginUserUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/login", c.Login)
	}

	log.Println("Rutas Users disponibles:")
	log.Println("  POST   /api/v1/users/login")
}

// Login registra o actualiza al usuario (upsert por email)
func (c *UserController) Login(ctx *gin.Context) {
	if c.loginUserUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Users service unavailable (database not configured)"})
		return
	}

	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.loginUserUC.Execute(&req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}
