package testutil

import (
	"fmt"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// TestSummary creates a search hit with the given ID.
func TestSummary(id int) models.RecipeSummary {
	return models.RecipeSummary{
		ID:             id,
		Title:          fmt.Sprintf("Pasta #%d", id),
		Image:          fmt.Sprintf("https://img.spoonacular.com/recipes/%d-312x231.jpg", id),
		ReadyInMinutes: intPtr(25),
		Servings:       intPtr(4),
		Cuisines:       []string{"Italian", "Mediterranean", "European"},
	}
}

// TestRecipeDetail creates a fully populated recipe.
func TestRecipeDetail() *models.RecipeDetail {
	return &models.RecipeDetail{
		RecipeSummary: models.RecipeSummary{
			ID:             716429,
			Title:          "Pasta with Garlic, Scallions, Cauliflower & Breadcrumbs",
			Image:          "https://img.spoonacular.com/recipes/716429-556x370.jpg",
			ReadyInMinutes: intPtr(45),
			Servings:       intPtr(2),
			Cuisines:       []string{"Italian"},
		},
		Summary:      `A <b>tasty</b> pasta. Try <a href="https://spoonacular.com/recipes/1">this one</a> too.`,
		Instructions: "<ol><li>Boil the pasta.</li><li>Toss with garlic.</li></ol>",
		ExtendedIngredients: []models.Ingredient{
			{ID: 1001, Original: "1 tbsp butter", Amount: floatPtr(1), Unit: "tbsp", Name: "butter"},
			{ID: 11135, OriginalString: "2 cups cauliflower florets", Amount: floatPtr(2), Unit: "cups", Name: "cauliflower"},
			{ID: 11291, Amount: floatPtr(5), Unit: "", Name: "scallions"},
		},
		Nutrition: &models.Nutrition{
			Nutrients: []models.Nutrient{
				{Name: "Calories", Amount: 584.46, Unit: "kcal"},
				{Name: "Fat", Amount: 19.99, Unit: "g"},
				{Name: "Saturated Fat", Amount: 7.2, Unit: "g"},
				{Name: "Carbohydrates", Amount: 83.62, Unit: "g"},
				{Name: "Sugar", Amount: 4.76, Unit: "g"},
			},
		},
		SpoonacularScore: floatPtr(83.4),
		SourceURL:        "https://fullbellysisters.blogspot.com/2012/06/pasta-with-garlic.html",
	}
}

// BareRecipeDetail creates a recipe with every optional field absent.
func BareRecipeDetail() *models.RecipeDetail {
	return &models.RecipeDetail{
		RecipeSummary: models.RecipeSummary{ID: 42, Title: "Mystery Dish"},
	}
}
