package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AdminOnly restringe la ruta al email de administrador configurado
// El email llega en el header X-Admin-Email y se compara contra la
// variable de entorno ADMIN_EMAIL
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		adminEmail := os.Getenv("ADMIN_EMAIL")
		email := ctx.GetHeader("X-Admin-Email")

		if adminEmail == "" || email != adminEmail {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Access denied",
			})
			return
		}

		ctx.Next()
	}
}
