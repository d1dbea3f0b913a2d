package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
)

// SearchForm holds the trimmed search form fields.
type SearchForm struct {
	Query        string `json:"query,omitempty"`
	Cuisine      string `json:"cuisine,omitempty"`
	MaxReadyTime string `json:"maxReadyTime,omitempty"`
}

// ParseSearchForm trims the raw form strings. MaxReadyTime is kept as a
// string and is never converted to a number.
func ParseSearchForm(query, cuisine, maxReadyTime string) SearchForm {
	return SearchForm{
		Query:        strings.TrimSpace(query),
		Cuisine:      strings.TrimSpace(cuisine),
		MaxReadyTime: strings.TrimSpace(maxReadyTime),
	}
}

// ParseSearchValues reads the form fields from URL query values.
func ParseSearchValues(v url.Values) SearchForm {
	return ParseSearchForm(v.Get("query"), v.Get("cuisine"), v.Get("maxReadyTime"))
}

// IsEmpty reports whether no field carries a value.
func (f SearchForm) IsEmpty() bool {
	return f.Query == "" && f.Cuisine == "" && f.MaxReadyTime == ""
}

// Values encodes the non-empty fields as URL query parameters. A field is
// omitted iff its trimmed value is empty.
func (f SearchForm) Values() url.Values {
	values := url.Values{}
	if f.Query != "" {
		values.Set("query", f.Query)
	}
	if f.Cuisine != "" {
		values.Set("cuisine", f.Cuisine)
	}
	if f.MaxReadyTime != "" {
		values.Set("maxReadyTime", f.MaxReadyTime)
	}
	return values
}

// Encode returns the URL-encoded query string of Values.
func (f SearchForm) Encode() string {
	return f.Values().Encode()
}

// Params builds the search request for one page.
func (f SearchForm) Params(offset, number int) models.SearchParams {
	return models.SearchParams{
		Query:        f.Query,
		Cuisine:      f.Cuisine,
		MaxReadyTime: f.MaxReadyTime,
		Offset:       offset,
		Number:       number,
	}
}

// Criteria describes the active filters for display, e.g.
// `"pasta"`, `Italian cuisine`, `under 30 minutes`.
func (f SearchForm) Criteria() []string {
	var out []string
	if f.Query != "" {
		out = append(out, fmt.Sprintf("%q", f.Query))
	}
	if f.Cuisine != "" {
		out = append(out, f.Cuisine+" cuisine")
	}
	if f.MaxReadyTime != "" {
		out = append(out, "under "+f.MaxReadyTime+" minutes")
	}
	return out
}
