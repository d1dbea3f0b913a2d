package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/views"
	"go.uber.org/zap"
)

// errEmptySearch is shown when the search form is submitted blank.
const errEmptySearch = "Enter search criteria"

// SearchHandler serves the search form, the results page and "load more".
type SearchHandler struct {
	Service   *service.SearchService
	Options   *config.SearchOptions
	Renderer  *views.Renderer
	ImageHost string
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(cfg *config.Config, searchService *service.SearchService, renderer *views.Renderer) *SearchHandler {
	opts := cfg.Options
	if opts == nil {
		opts = &config.SearchOptions{}
	}
	return &SearchHandler{
		Service:   searchService,
		Options:   opts,
		Renderer:  renderer,
		ImageHost: cfg.EnvVars.ImageHost,
	}
}

// ShowForm handles GET /
func (h *SearchHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.SearchTemplate, views.SearchPage{
		Options: h.Options,
		Form:    service.ParseSearchValues(c.Request.URL.Query()),
	})
}

// Submit handles GET /search?query=&cuisine=&maxReadyTime=. A blank form is
// re-rendered with an error; otherwise the browser is sent to the results.
func (h *SearchHandler) Submit(c *gin.Context) {
	form := service.ParseSearchValues(c.Request.URL.Query())
	if form.IsEmpty() {
		c.HTML(http.StatusUnprocessableEntity, views.SearchTemplate, views.SearchPage{
			Options: h.Options,
			Form:    form,
			Error:   errEmptySearch,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/recipes?"+form.Encode())
}

// Results handles GET /recipes. It starts a new search in the caller's
// session and renders the first page.
func (h *SearchHandler) Results(c *gin.Context) {
	form := service.ParseSearchValues(c.Request.URL.Query())

	id, snap, err := h.Service.StartSearch(c.Request.Context(), sessionID(c), form)
	setSessionID(c, id, h.Service.Cfg.EnvVars.SessionTTL)
	if err != nil {
		logger.FromContext(c).Error("failed to search recipes",
			zap.String("query", form.Encode()),
			zap.Error(err),
		)
		h.renderError(c, errorStatus(err), err)
		return
	}

	c.HTML(http.StatusOK, views.ResultsTemplate, views.ResultsPage{
		Title:   "Recipe Results",
		Results: views.NewResultsView(snap, h.ImageHost),
	})
}

// LoadMore handles POST /recipes/more. Script clients asking for JSON get
// the appended card fragment; plain form posts get the full page back.
func (h *SearchHandler) LoadMore(c *gin.Context) {
	snap, added, err := h.Service.LoadMore(c.Request.Context(), sessionID(c), generationParam(c))
	if err != nil && !errors.Is(err, service.ErrNoMoreResults) {
		logger.FromContext(c).Warn("failed to load more recipes", zap.Error(err))
	}

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		h.loadMoreJSON(c, snap, added, err)
		return
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.Redirect(http.StatusSeeOther, "/")
		return
	case err != nil && !errors.Is(err, service.ErrLoadInFlight) && !errors.Is(err, service.ErrNoMoreResults):
		h.renderError(c, errorStatus(err), err)
		return
	}
	c.HTML(http.StatusOK, views.ResultsTemplate, views.ResultsPage{
		Title:   "Recipe Results",
		Results: views.NewResultsView(snap, h.ImageHost),
	})
}

func (h *SearchHandler) loadMoreJSON(c *gin.Context, snap service.Snapshot, added []models.RecipeSummary, err error) {
	if err != nil && !errors.Is(err, service.ErrNoMoreResults) {
		c.JSON(errorStatus(err), gin.H{"error": userMessage(err)})
		return
	}

	fragment, rerr := h.Renderer.Cards(views.NewCards(added, h.ImageHost))
	if rerr != nil {
		logger.FromContext(c).Error("failed to render cards", zap.Error(rerr))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"html":       fragment,
		"added":      len(added),
		"shown":      len(snap.Results),
		"total":      snap.TotalResults,
		"offset":     snap.Offset,
		"hasMore":    snap.HasMore,
		"generation": snap.Generation,
	})
}

func (h *SearchHandler) renderError(c *gin.Context, status int, err error) {
	c.HTML(status, views.ErrorTemplate, views.ErrorPage{
		Title:   "Error",
		Message: userMessage(err),
	})
}
