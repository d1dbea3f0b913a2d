package service

import (
	"context"
	"errors"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/spoonacular"
)

// ErrSessionNotFound is returned when a load-more names an unknown or
// expired session.
var ErrSessionNotFound = errors.New("search session not found")

// SearchService runs recipe searches and owns the per-session result lists.
type SearchService struct {
	Cfg      *config.Config
	Provider spoonacular.RecipeProvider
	Sessions *SessionStore
}

// NewSearchService creates a new SearchService.
func NewSearchService(cfg *config.Config, provider spoonacular.RecipeProvider) *SearchService {
	return &SearchService{
		Cfg:      cfg,
		Provider: provider,
		Sessions: NewSessionStore(provider, pageSize(cfg), cfg.EnvVars.MaxSessions, cfg.EnvVars.SessionTTL),
	}
}

// PageSize returns the configured number of results per page.
func (s *SearchService) PageSize() int {
	return pageSize(s.Cfg)
}

// SearchPage fetches a single page without touching any session.
func (s *SearchService) SearchPage(ctx context.Context, form SearchForm, offset, number int) (*models.ResultPage, error) {
	if number <= 0 {
		number = s.PageSize()
	}
	return s.Provider.Search(ctx, form.Params(offset, number))
}

// StartSearch resets the caller's session to a new search and loads its
// first page. It returns the (possibly new) session ID.
func (s *SearchService) StartSearch(ctx context.Context, sessionID string, form SearchForm) (string, Snapshot, error) {
	id, p := s.Sessions.GetOrCreate(sessionID)
	snap, err := p.StartSearch(ctx, form)
	return id, snap, err
}

// LoadMore appends the next page to the caller's session, provided the
// session still holds the search identified by generation.
func (s *SearchService) LoadMore(ctx context.Context, sessionID string, generation uint64) (Snapshot, []models.RecipeSummary, error) {
	p, ok := s.Sessions.Get(sessionID)
	if !ok {
		return Snapshot{}, nil, ErrSessionNotFound
	}
	return p.LoadMore(ctx, generation)
}

func pageSize(cfg *config.Config) int {
	if cfg == nil || cfg.EnvVars.PageSize <= 0 {
		return models.DefaultPageSize
	}
	return cfg.EnvVars.PageSize
}
