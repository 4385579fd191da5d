package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSOptions configura los orígenes permitidos para el frontend
type CORSOptions struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// CORS habilita requests cross-origin desde el frontend de la tienda
func CORS(opts CORSOptions) gin.HandlerFunc {
	allowed := make(map[string]bool, len(opts.AllowedOrigins))
	for _, origin := range opts.AllowedOrigins {
		allowed[origin] = true
	}

	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
			if opts.AllowCredentials {
				ctx.Header("Access-Control-Allow-Credentials", "true")
			}
			ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-Email, X-Admin-Email")
		}

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
