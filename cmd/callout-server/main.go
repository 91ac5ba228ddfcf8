package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/callouthq/callout/pkg/callout/config"
	"github.com/callouthq/callout/pkg/callout/links"
	"github.com/callouthq/callout/pkg/callout/sessions"
	"github.com/callouthq/callout/pkg/callout/suggest"
	"github.com/callouthq/callout/pkg/callout/variant"

	_ "github.com/callouthq/callout/api/swagger"
)

// @title Callout API
// @version 1.0
// @description Compose a CTA overlay, preview it over any page, and share it as a single self-contained link. No database: the whole configuration lives in the link fragment.

// @contact.name Callout Support
// @contact.url https://github.com/callouthq/callout

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	// CORS for the API; the creator and viewer pages may be hosted
	// apart from the API
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	r.Use(cors.New(corsConfig))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// One selector for the process: A/B picks are cached per viewer
	// session for as long as the server runs
	selector := variant.NewSelector()

	// Suggestion collaborator: external endpoint when configured,
	// canned copy otherwise
	var suggester suggest.Suggester = suggest.StaticSuggester{}
	if cfg.SuggestEndpoint != "" {
		suggester = suggest.NewHTTPSuggester(cfg.SuggestEndpoint)
		log.Printf("Using suggestion endpoint %s", cfg.SuggestEndpoint)
	}

	// API routes
	api := r.Group("/api")
	api.Use(sessions.Middleware())
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "callout",
			})
		})

		linksHandler := links.NewHandler(cfg.BaseURL, selector)
		linksHandler.RegisterRoutes(api.Group(""))

		suggestHandler := suggest.NewHandler(suggester)
		suggestHandler.RegisterRoutes(api.Group(""))
	}

	// Serve the creator and viewer pages if a frontend build exists
	if _, err := os.Stat(cfg.WebDist); err == nil {
		r.Static("/assets", filepath.Join(cfg.WebDist, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(cfg.WebDist, "favicon.ico"))

		indexHTML := filepath.Join(cfg.WebDist, "index.html")
		// Creator at /, viewer at /v (payload travels in the fragment,
		// so the server never sees it)
		for _, route := range []string{"/", "/v"} {
			r.GET(route, func(c *gin.Context) {
				c.File(indexHTML)
			})
		}

		log.Printf("Serving frontend from %s", cfg.WebDist)
	} else {
		log.Println("No frontend build found - API only mode")
	}

	log.Printf("Starting Callout server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
