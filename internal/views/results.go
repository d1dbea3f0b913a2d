package views

import (
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
)

// ResultsView is the render model of the results page.
type ResultsView struct {
	Criteria   []string
	Query      string
	Cards      []Card
	Shown      int
	Total      int
	HasMore    bool
	Generation uint64
}

// NewResultsView builds the results page from a paginator snapshot.
func NewResultsView(snap service.Snapshot, imageHost string) ResultsView {
	return ResultsView{
		Criteria:   snap.Form.Criteria(),
		Query:      snap.Form.Encode(),
		Cards:      NewCards(snap.Results, imageHost),
		Shown:      len(snap.Results),
		Total:      snap.TotalResults,
		HasMore:    snap.HasMore,
		Generation: snap.Generation,
	}
}

// Empty reports whether the search matched nothing.
func (v ResultsView) Empty() bool {
	return v.Shown == 0
}

// Exhausted reports whether every result has been shown.
func (v ResultsView) Exhausted() bool {
	return !v.HasMore && v.Shown > 0
}
