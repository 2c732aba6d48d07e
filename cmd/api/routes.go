package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/healthz", app.handleHealthz)
	app.router.GET("/readyz", app.handleReadyz)
	app.router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	// Chart endpoints
	app.router.POST("/", app.handleCelestialChart)
	app.router.POST("/celestial-chart", app.handleCelestialChart)
	app.router.GET("/download/:filename", app.handleDownload)
	app.router.GET("/static/:filename", app.handleStatic)

	// Observer site metadata
	app.router.GET("/observer", app.handleGetObserver)

	// Locale
	app.router.GET("/change_language/:code", app.handleChangeLanguage)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
