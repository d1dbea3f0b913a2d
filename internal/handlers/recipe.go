package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/views"
	"go.uber.org/zap"
)

// RecipeHandler is the handler for the recipe detail page.
type RecipeHandler struct {
	Service   *service.RecipeService
	ImageHost string
}

// NewRecipeHandler is the constructor function for initializing a new RecipeHandler.
func NewRecipeHandler(cfg *config.Config, recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{Service: recipeService, ImageHost: cfg.EnvVars.ImageHost}
}

// GetRecipe handles GET /recipes/:recipe_id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeIDStr := c.Param("recipe_id")
	recipeID, err := parseUintParam(recipeIDStr)
	if err != nil || recipeID == 0 {
		c.HTML(http.StatusBadRequest, views.ErrorTemplate, views.ErrorPage{
			Title:   "Error",
			Message: "Invalid recipe ID",
		})
		return
	}

	detail, err := h.Service.GetRecipeByID(c.Request.Context(), recipeID)
	if err != nil {
		logger.FromContext(c).Error("failed to get recipe", zap.String("recipe_id", recipeIDStr), zap.Error(err))
		c.HTML(errorStatus(err), views.ErrorTemplate, views.ErrorPage{
			Title:     "Error",
			Message:   userMessage(err),
			BackURL:   "/",
			BackLabel: "Back to Search",
		})
		return
	}

	c.HTML(http.StatusOK, views.DetailTemplate, views.DetailPage{
		Title:  detail.Title,
		Recipe: views.NewDetailView(detail, h.ImageHost),
	})
}
