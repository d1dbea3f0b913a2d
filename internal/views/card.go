package views

import (
	"net/url"
	"strings"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
)

// PlaceholderImage is served in place of images from hosts that are not
// allow-listed.
const PlaceholderImage = "/static/placeholder.svg"

// maxCardCuisines is how many cuisine tags a result card shows before
// collapsing the rest into "+N more".
const maxCardCuisines = 2

// Card is the render model of one search result.
type Card struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	ReadyInMinutes int      `json:"readyInMinutes,omitempty"`
	Servings       int      `json:"servings,omitempty"`
	Cuisines       []string `json:"cuisines,omitempty"`
	MoreCuisines   int      `json:"moreCuisines,omitempty"`
}

// NewCard builds the card of a search hit.
func NewCard(r models.RecipeSummary, imageHost string) Card {
	card := Card{
		ID:    r.ID,
		Title: r.Title,
		Image: ImageURL(r.Image, imageHost),
	}
	if r.ReadyInMinutes != nil {
		card.ReadyInMinutes = *r.ReadyInMinutes
	}
	if r.Servings != nil {
		card.Servings = *r.Servings
	}
	cuisines := r.Cuisines
	if len(cuisines) > maxCardCuisines {
		card.MoreCuisines = len(cuisines) - maxCardCuisines
		cuisines = cuisines[:maxCardCuisines]
	}
	card.Cuisines = append([]string(nil), cuisines...)
	return card
}

// NewCards builds the cards of results, preserving order.
func NewCards(results []models.RecipeSummary, imageHost string) []Card {
	cards := make([]Card, 0, len(results))
	for _, r := range results {
		cards = append(cards, NewCard(r, imageHost))
	}
	return cards
}

// ImageURL returns raw when it is an https URL on imageHost and the local
// placeholder otherwise.
func ImageURL(raw, imageHost string) string {
	if raw == "" || imageHost == "" {
		return PlaceholderImage
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return PlaceholderImage
	}
	if !strings.EqualFold(u.Hostname(), imageHost) {
		return PlaceholderImage
	}
	return u.String()
}
