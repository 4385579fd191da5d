package config

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig configura el módulo API (health check y versión)
type APIConfig struct {
	DB          *sql.DB
	ServiceName string
	Version     string
}

// DefaultAPIConfig retorna la configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServiceName: "florish-service",
		Version:     "1.0.0",
	}
}

// SetupAPIModule registra el health check en la raíz y en el grupo v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	healthHandler := func(ctx *gin.Context) {
		status := "ok"
		database := "not configured"

		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err != nil {
				status = "degraded"
				database = "unreachable"
			} else {
				database = "connected"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":    status,
			"service":   cfg.ServiceName,
			"version":   cfg.Version,
			"database":  database,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.GET("/health", healthHandler)
	v1.GET("/health", healthHandler)
}
