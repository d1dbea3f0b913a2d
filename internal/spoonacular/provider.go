package spoonacular

import (
	"context"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
)

// RecipeProvider fetches recipes from the upstream recipe API.
type RecipeProvider interface {
	Search(ctx context.Context, params models.SearchParams) (*models.ResultPage, error)
	GetByID(ctx context.Context, id int) (*models.RecipeDetail, error)
}
