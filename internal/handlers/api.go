package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
	"go.uber.org/zap"
)

// maxAPIPageSize caps the number parameter of the JSON search.
const maxAPIPageSize = 100

// APIHandler serves the JSON API under /api/v1.
type APIHandler struct {
	Search  *service.SearchService
	Recipes *service.RecipeService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(searchService *service.SearchService, recipeService *service.RecipeService) *APIHandler {
	return &APIHandler{Search: searchService, Recipes: recipeService}
}

// SearchRecipes handles GET /api/v1/recipes?query=&cuisine=&maxReadyTime=&offset=&number=
func (h *APIHandler) SearchRecipes(c *gin.Context) {
	form := service.ParseSearchValues(c.Request.URL.Query())
	offset := parseIntQuery(c, "offset", 0, 0, 0)
	number := parseIntQuery(c, "number", h.Search.PageSize(), 1, maxAPIPageSize)

	page, err := h.Search.SearchPage(c.Request.Context(), form, offset, number)
	if err != nil {
		logger.FromContext(c).Error("failed to search recipes", zap.String("query", form.Encode()), zap.Error(err))
		c.JSON(errorStatus(err), gin.H{"error": userMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":      page.Results,
		"totalResults": page.TotalResults,
		"offset":       page.Offset,
		"number":       page.Number,
		"hasMore":      page.Offset+len(page.Results) < page.TotalResults && len(page.Results) >= page.Number,
	})
}

// GetRecipe handles GET /api/v1/recipes/:recipe_id
func (h *APIHandler) GetRecipe(c *gin.Context) {
	recipeIDStr := c.Param("recipe_id")
	recipeID, err := parseUintParam(recipeIDStr)
	if err != nil || recipeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	detail, err := h.Recipes.GetRecipeByID(c.Request.Context(), recipeID)
	if err != nil {
		logger.FromContext(c).Error("failed to get recipe", zap.String("recipe_id", recipeIDStr), zap.Error(err))
		c.JSON(errorStatus(err), gin.H{"error": userMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": detail})
}

// StartSession handles POST /api/v1/sessions?query=&cuisine=&maxReadyTime=
// It starts a search in the caller's session and returns the first page.
func (h *APIHandler) StartSession(c *gin.Context) {
	form := service.ParseSearchValues(c.Request.URL.Query())

	id, snap, err := h.Search.StartSearch(c.Request.Context(), sessionID(c), form)
	setSessionID(c, id, h.Search.Cfg.EnvVars.SessionTTL)
	if err != nil {
		logger.FromContext(c).Error("failed to search recipes", zap.String("query", form.Encode()), zap.Error(err))
		c.JSON(errorStatus(err), gin.H{"error": userMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":      id,
		"generation":   snap.Generation,
		"results":      snap.Results,
		"totalResults": snap.TotalResults,
		"offset":       snap.Offset,
		"hasMore":      snap.HasMore,
	})
}

// LoadMore handles POST /api/v1/sessions/more?generation=
func (h *APIHandler) LoadMore(c *gin.Context) {
	snap, added, err := h.Search.LoadMore(c.Request.Context(), sessionID(c), generationParam(c))
	if err != nil && !errors.Is(err, service.ErrNoMoreResults) {
		logger.FromContext(c).Warn("failed to load more recipes", zap.Error(err))
		c.JSON(errorStatus(err), gin.H{"error": userMessage(err)})
		return
	}
	if added == nil {
		added = []models.RecipeSummary{}
	}

	c.JSON(http.StatusOK, gin.H{
		"results":      added,
		"generation":   snap.Generation,
		"shown":        len(snap.Results),
		"totalResults": snap.TotalResults,
		"offset":       snap.Offset,
		"hasMore":      snap.HasMore,
	})
}
