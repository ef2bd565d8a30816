package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rinha-backend/internal/shared/middleware"
	"rinha-backend/internal/shared/openapi"
	"rinha-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupPersonRoutes(router, c)

	// API description is a development aid only
	if !c.Config.App.IsProduction() {
		doc := openapi.Document(c.Config.App.Name, c.Config.App.Version)
		router.GET("/openapi.json", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, doc)
		})
	}

	return router
}

// ========================================
// PERSON ROUTES
// ========================================
func setupPersonRoutes(router *gin.Engine, c *container.Container) {
	people := router.Group("/pessoas")
	{
		people.POST("", c.PersonHandler.Create)
		people.GET("", c.PersonHandler.Search)
		people.GET("/:id", c.PersonHandler.GetByID)
	}

	router.GET("/contagem-pessoas", c.PersonHandler.Count)
	router.GET("/getAllPessoa", c.PersonHandler.List)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "unreachable"
			}
		}

		services := gin.H{"database": dbStatus}
		if appCtx.DB != nil {
			if stats := appCtx.DB.Stats(); stats != nil {
				services["pool"] = stats
			}
		}
		health["services"] = services

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
