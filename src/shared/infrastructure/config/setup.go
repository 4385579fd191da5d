package config

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ezekielbrioso/Florish/src/shared/infrastructure/middleware"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableCORS       bool
	AllowedOrigins   []string
	AllowCredentials bool
}

// DefaultSharedConfig devuelve una configuración por defecto
// CORS_ORIGINS admite una lista separada por comas; por defecto el
// dev server del frontend
func DefaultSharedConfig() SharedConfig {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = nil
		for _, origin := range strings.Split(env, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return SharedConfig{
		EnableCORS:       true,
		AllowedOrigins:   origins,
		AllowCredentials: true,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	if config.EnableCORS {
		router.Use(middleware.CORS(middleware.CORSOptions{
			AllowedOrigins:   config.AllowedOrigins,
			AllowCredentials: config.AllowCredentials,
		}))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
	// Por ejemplo:
	// - Rate limiting
	// - Medición de rendimiento
	// - Autenticación/Autorización
}
