package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aacboard-backend/internal/shared/middleware"
	"aacboard-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/storage-test", storageTestHandler(c))

		setupBoardRoutes(v1, c)
		setupNavigationRoutes(v1, c)
		setupAssetRoutes(v1, c)
		setupSessionRoutes(v1, c)
	}

	return router
}

// ========================================
// BOARD ROUTES
// ========================================
func setupBoardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	pages := v1.Group("/pages")
	{
		pages.GET("", c.BoardHandler.List)
		pages.GET("/by-path", c.BoardHandler.GetByPath)
		pages.GET("/:id", c.BoardHandler.GetByID)
	}

	// Writes go through the single mutation surface: callers must hold
	// a live edit-session token.
	edits := v1.Group("/pages")
	edits.Use(middleware.SessionGuard(c.JWTManager))
	{
		edits.POST("", c.BoardHandler.Create)
		edits.PUT("/:id", c.BoardHandler.Update)
		edits.DELETE("/:id", c.BoardHandler.Delete)
		edits.POST("/:id/tiles", c.BoardHandler.AddTile)
		edits.PUT("/:id/tiles/:tileId", c.BoardHandler.UpdateTile)
		edits.DELETE("/:id/tiles/:tileId", c.BoardHandler.RemoveTile)
	}
}

// ========================================
// NAVIGATION ROUTES
// ========================================
func setupNavigationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/resolve", c.NavigationHandler.Resolve)
}

// ========================================
// ASSET ROUTES
// ========================================
func setupAssetRoutes(v1 *gin.RouterGroup, c *container.Container) {
	assets := v1.Group("/assets")
	{
		assets.POST("", c.AssetHandler.Upload)
		assets.GET("", c.AssetHandler.List)
		assets.GET("/handles/:id", c.AssetHandler.ServeHandle)
		assets.DELETE("/handles/:id", c.AssetHandler.ReleaseHandle)
		assets.GET("/:key", c.AssetHandler.Get)
		assets.DELETE("/:key", c.AssetHandler.Delete)
		assets.POST("/:key/handles", c.AssetHandler.MintHandle)
	}
}

// ========================================
// SESSION ROUTES
// ========================================
func setupSessionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", c.SessionHandler.Open)
		sessions.POST("/:id/authorize", c.SessionHandler.Authorize)
		sessions.GET("/:id", c.SessionHandler.Get)
		// Cancel is deliberately unguarded so a session abandoned at the
		// password prompt can still be dismissed.
		sessions.POST("/:id/cancel", c.SessionHandler.Cancel)
	}

	// Draft access requires the token issued at authorization; the
	// guard also pins the token to the session id in the path.
	drafts := v1.Group("/sessions")
	drafts.Use(middleware.SessionGuard(c.JWTManager))
	{
		drafts.GET("/:id/draft", c.SessionHandler.Draft)
		drafts.PUT("/:id/draft", c.SessionHandler.UpdateDraft)
		drafts.POST("/:id/draft/tiles", c.SessionHandler.AddDraftTile)
		drafts.PUT("/:id/draft/tiles/:tileId", c.SessionHandler.UpdateDraftTile)
		drafts.DELETE("/:id/draft/tiles/:tileId", c.SessionHandler.RemoveDraftTile)
		drafts.PUT("/:id/password", c.SessionHandler.ChangePassword)
		drafts.POST("/:id/save", c.SessionHandler.Save)
	}
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

		storageStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.DB == nil {
			storageStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				storageStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"storage":      storageStatus,
			"open_handles": appCtx.AssetService.OpenHandles(),
			"page_count":   appCtx.BoardService.PageCount(c.Request.Context()),
		}

		statusCode := http.StatusOK
		if storageStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// ========================================
// STORAGE TEST HANDLER
// ========================================
func storageTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.DB == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Storage not available",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var version string
		if err := appCtx.DB.DB.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&version); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.DB.Stats()

		c.JSON(http.StatusOK, gin.H{
			"message": "Storage test successful",
			"storage": gin.H{
				"sqlite_version": version,
				"pool_stats": gin.H{
					"open_connections": stats.OpenConnections,
					"in_use":           stats.InUse,
					"idle":             stats.Idle,
					"max_connections":  stats.MaxOpenConnections,
				},
			},
		})
	}
}
