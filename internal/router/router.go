package router

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/cache"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/handlers"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/middleware"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/spoonacular"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/views"
)

// SetupRouter sets up the Gin router. Every recipe API response is served
// through responseCache.
func SetupRouter(cfg *config.Config, responseCache cache.Cache) (*gin.Engine, error) {
	// Create a bare Gin router; logging and recovery are added below
	r := gin.New()
	r.Use(gin.Recovery())

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(renderer.Templates())

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.AccessLogMiddleware())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders(cfg.EnvVars.ImageHost))

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.StaticFS("/static", views.StaticFS())

	// Recipe API client, cached and coalesced
	client := spoonacular.NewClient(cfg.EnvVars.SpoonacularAPIKey, cfg.EnvVars.SpoonacularURL, cfg.EnvVars.RequestTimeout)
	provider := spoonacular.NewCachingProvider(client, responseCache)

	searchService := service.NewSearchService(cfg, provider)
	recipeService := service.NewRecipeService(cfg, provider)

	searchHandler := handlers.NewSearchHandler(cfg, searchService, renderer)
	recipeHandler := handlers.NewRecipeHandler(cfg, recipeService)
	apiHandler := handlers.NewAPIHandler(searchService, recipeService)

	limiter := middleware.RateLimitByIP(cfg.EnvVars.RateLimitRPS, time.Minute, 10*time.Minute)

	// HTML pages
	pages := r.Group("/")
	{
		pages.Use(limiter)

		// Search form
		pages.GET("/", searchHandler.ShowForm)
		// Validate the form and redirect to the results
		pages.GET("/search", searchHandler.Submit)
		// First page of results, starts a new search in the session
		pages.GET("/recipes", searchHandler.Results)
		// Next page of the session's search
		pages.POST("/recipes/more", searchHandler.LoadMore)
		// Recipe detail
		pages.GET("/recipes/:recipe_id", recipeHandler.GetRecipe)
	}

	// JSON API
	api := r.Group("/api/v1")
	{
		api.Use(cors.New(corsConfig(cfg)), limiter)

		api.GET("/recipes", apiHandler.SearchRecipes)
		api.GET("/recipes/:recipe_id", apiHandler.GetRecipe)
		api.POST("/sessions", apiHandler.StartSession)
		api.POST("/sessions/more", apiHandler.LoadMore)
	}

	return r, nil
}

// corsConfig allows the configured origins with credentials, or any origin
// without them.
func corsConfig(cfg *config.Config) cors.Config {
	config := cors.DefaultConfig()
	var origins []string
	for _, o := range strings.Split(cfg.EnvVars.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowCredentials = true
	config.AllowOrigins = origins
	return config
}
