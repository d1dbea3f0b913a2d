package views

import (
	"fmt"
	"html/template"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
)

// maxNutrients caps the nutrition panel.
const maxNutrients = 4

var (
	// summaryPolicy keeps inline formatting only. Links are unwrapped so
	// their text stays in place.
	summaryPolicy = bluemonday.NewPolicy().AllowElements("b", "strong", "i", "em", "p", "br", "span")

	instructionsPolicy = bluemonday.NewPolicy().AllowElements("b", "strong", "i", "em", "p", "br", "span", "ol", "ul", "li")

	textPolicy = bluemonday.StrictPolicy()
)

// NutrientView is one row of the nutrition panel.
type NutrientView struct {
	Name   string
	Amount string
}

// DetailView is the render model of the recipe detail page.
type DetailView struct {
	ID             int
	Title          string
	Image          string
	ReadyInMinutes int
	Servings       int
	Cuisines       []string
	Score          string
	Summary        template.HTML
	Ingredients    []string
	Instructions   template.HTML
	Steps          []models.Step
	Nutrients      []NutrientView
	SourceURL      string
}

// NewDetailView builds the detail page. Missing optional fields fall back
// to empty states instead of failing.
func NewDetailView(d *models.RecipeDetail, imageHost string) DetailView {
	v := DetailView{
		ID:        d.ID,
		Title:     d.Title,
		Image:     ImageURL(d.Image, imageHost),
		Cuisines:  d.Cuisines,
		SourceURL: sourceURL(d.SourceURL),
	}
	if d.ReadyInMinutes != nil {
		v.ReadyInMinutes = *d.ReadyInMinutes
	}
	if d.Servings != nil {
		v.Servings = *d.Servings
	}
	if d.SpoonacularScore != nil {
		v.Score = fmt.Sprintf("%d/100", int(math.Round(*d.SpoonacularScore)))
	}
	if s := sanitize(summaryPolicy, d.Summary); s != "" {
		v.Summary = template.HTML(s)
	}

	for _, ing := range d.ExtendedIngredients {
		if line := IngredientLine(ing); line != "" {
			v.Ingredients = append(v.Ingredients, line)
		}
	}

	if s := sanitize(instructionsPolicy, d.Instructions); s != "" {
		v.Instructions = template.HTML(s)
	} else if len(d.AnalyzedInstructions) > 0 {
		v.Steps = SortedSteps(d.AnalyzedInstructions[0].Steps)
	}

	if d.Nutrition != nil {
		for i, n := range d.Nutrition.Nutrients {
			if i == maxNutrients {
				break
			}
			v.Nutrients = append(v.Nutrients, NutrientView{
				Name:   n.Name,
				Amount: strings.TrimSpace(fmt.Sprintf("%d %s", int(math.Round(n.Amount)), n.Unit)),
			})
		}
	}
	return v
}

// IngredientsEmpty reports whether the "No Ingredients Listed" state applies.
func (v DetailView) IngredientsEmpty() bool {
	return len(v.Ingredients) == 0
}

// InstructionsEmpty reports whether the "No Instructions Available" state
// applies.
func (v DetailView) InstructionsEmpty() bool {
	return v.Instructions == "" && len(v.Steps) == 0
}

// IngredientLine renders one ingredient: the original text when present,
// otherwise "amount unit name".
func IngredientLine(ing models.Ingredient) string {
	if s := strings.TrimSpace(ing.Original); s != "" {
		return s
	}
	if s := strings.TrimSpace(ing.OriginalString); s != "" {
		return s
	}
	var parts []string
	if ing.Amount != nil {
		parts = append(parts, strconv.FormatFloat(*ing.Amount, 'f', -1, 64))
	}
	if u := strings.TrimSpace(ing.Unit); u != "" {
		parts = append(parts, u)
	}
	if n := strings.TrimSpace(ing.Name); n != "" {
		parts = append(parts, n)
	}
	return strings.Join(parts, " ")
}

// SortedSteps returns a copy of steps ordered by step number.
func SortedSteps(steps []models.Step) []models.Step {
	out := slices.Clone(steps)
	slices.SortStableFunc(out, func(a, b models.Step) int {
		return a.Number - b.Number
	})
	return out
}

// sanitize applies p to raw and returns "" when no visible text remains.
func sanitize(p *bluemonday.Policy, raw string) string {
	if strings.TrimSpace(textPolicy.Sanitize(raw)) == "" {
		return ""
	}
	return strings.TrimSpace(p.Sanitize(raw))
}

func sourceURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return ""
	}
	return u.String()
}
