package models

// DefaultPageSize is the number of results requested per page when the
// caller does not ask for a specific size.
const DefaultPageSize = 20

// SearchParams holds the parameters of a single search request.
// Filter fields are raw, already-trimmed strings; MaxReadyTime is passed
// upstream as-is and is never parsed.
type SearchParams struct {
	Query        string `json:"query,omitempty"`
	Cuisine      string `json:"cuisine,omitempty"`
	MaxReadyTime string `json:"maxReadyTime,omitempty"`
	Offset       int    `json:"offset"`
	Number       int    `json:"number"`
}

// RecipeSummary is a single search hit.
type RecipeSummary struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	ReadyInMinutes *int     `json:"readyInMinutes,omitempty"`
	Servings       *int     `json:"servings,omitempty"`
	Cuisines       []string `json:"cuisines,omitempty"`
}

// ResultPage is one page of search results.
type ResultPage struct {
	Results      []RecipeSummary `json:"results"`
	TotalResults int             `json:"totalResults"`
	Offset       int             `json:"offset"`
	Number       int             `json:"number"`
}

// RecipeDetail is the full recipe information. Every field past the
// summary fields is optional upstream.
type RecipeDetail struct {
	RecipeSummary
	Summary              string             `json:"summary,omitempty"`
	Instructions         string             `json:"instructions,omitempty"`
	AnalyzedInstructions []InstructionGroup `json:"analyzedInstructions,omitempty"`
	ExtendedIngredients  []Ingredient       `json:"extendedIngredients,omitempty"`
	Nutrition            *Nutrition         `json:"nutrition,omitempty"`
	SpoonacularScore     *float64           `json:"spoonacularScore,omitempty"`
	SourceURL            string             `json:"sourceUrl,omitempty"`
}

// InstructionGroup is a named list of ordered steps.
type InstructionGroup struct {
	Name  string `json:"name,omitempty"`
	Steps []Step `json:"steps"`
}

// Step is a single instruction step.
type Step struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// Ingredient is an entry of the extended ingredient list.
type Ingredient struct {
	ID             int      `json:"id,omitempty"`
	Original       string   `json:"original,omitempty"`
	OriginalString string   `json:"originalString,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	Unit           string   `json:"unit,omitempty"`
	Name           string   `json:"name,omitempty"`
}

// Nutrition holds the nutrient breakdown of a recipe.
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Nutrient is a single nutrient amount.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}
