package service

import (
	"context"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/spoonacular"
)

// RecipeService is the business logic layer for recipe detail lookups.
type RecipeService struct {
	Cfg      *config.Config
	Provider spoonacular.RecipeProvider
}

// NewRecipeService is the constructor function for initializing a new RecipeService.
func NewRecipeService(cfg *config.Config, provider spoonacular.RecipeProvider) *RecipeService {
	return &RecipeService{
		Cfg:      cfg,
		Provider: provider,
	}
}

// GetRecipeByID fetches the full recipe information.
func (s *RecipeService) GetRecipeByID(ctx context.Context, id uint) (*models.RecipeDetail, error) {
	return s.Provider.GetByID(ctx, int(id))
}
