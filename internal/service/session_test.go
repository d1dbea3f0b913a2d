package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/testutil"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	s := NewSessionStore(testutil.NewPagedProvider(45), 20, 8, time.Minute)

	id, p := s.GetOrCreate("")
	if id == "" || p == nil {
		t.Fatal("expected a new session")
	}

	again, p2 := s.GetOrCreate(id)
	if again != id || p2 != p {
		t.Error("known session should return the same paginator")
	}

	other, p3 := s.GetOrCreate("unknown-id")
	if other == "unknown-id" || p3 == p {
		t.Error("unknown session should get a fresh ID and paginator")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSessionStore_Get(t *testing.T) {
	s := NewSessionStore(testutil.NewPagedProvider(45), 20, 8, time.Minute)
	if _, ok := s.Get(""); ok {
		t.Error("empty ID should never resolve")
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("missing ID should not resolve")
	}
	id, _ := s.GetOrCreate("")
	if _, ok := s.Get(id); !ok {
		t.Error("created session should resolve")
	}
}

func TestSessionStore_Expires(t *testing.T) {
	s := NewSessionStore(testutil.NewPagedProvider(45), 20, 8, 20*time.Millisecond)
	id, _ := s.GetOrCreate("")
	time.Sleep(60 * time.Millisecond)
	if _, ok := s.Get(id); ok {
		t.Error("session should have expired")
	}
}

func TestSessionStore_EvictsOldest(t *testing.T) {
	s := NewSessionStore(testutil.NewPagedProvider(45), 20, 2, time.Minute)
	first, _ := s.GetOrCreate("")
	s.GetOrCreate("")
	s.GetOrCreate("")
	if _, ok := s.Get(first); ok {
		t.Error("oldest session should have been evicted")
	}
}

func newTestSearchService(provider *testutil.PagedProvider, pageSize int) *SearchService {
	cfg := &config.Config{EnvVars: config.EnvVars{
		PageSize:    pageSize,
		MaxSessions: 16,
		SessionTTL:  time.Minute,
	}}
	return NewSearchService(cfg, provider)
}

func TestSearchService_StartAndLoadMore(t *testing.T) {
	svc := newTestSearchService(testutil.NewPagedProvider(45), 20)
	ctx := context.Background()

	id, snap, err := svc.StartSearch(ctx, "", ParseSearchForm("pasta", "", ""))
	if err != nil {
		t.Fatalf("StartSearch error: %v", err)
	}
	if id == "" || len(snap.Results) != 20 {
		t.Fatalf("id=%q results=%d", id, len(snap.Results))
	}

	snap, added, err := svc.LoadMore(ctx, id, snap.Generation)
	if err != nil {
		t.Fatalf("LoadMore error: %v", err)
	}
	if len(added) != 20 || len(snap.Results) != 40 {
		t.Errorf("added=%d results=%d, want 20/40", len(added), len(snap.Results))
	}

	// A new search on the same session starts over.
	sameID, snap, err := svc.StartSearch(ctx, id, ParseSearchForm("soup", "", ""))
	if err != nil {
		t.Fatal(err)
	}
	if sameID != id || len(snap.Results) != 20 || snap.Form.Query != "soup" {
		t.Errorf("restart: id=%q results=%d form=%+v", sameID, len(snap.Results), snap.Form)
	}

	// A page still showing the pasta search cannot extend the soup list.
	if _, _, err := svc.LoadMore(ctx, id, snap.Generation-1); !errors.Is(err, ErrStaleResponse) {
		t.Errorf("load more for replaced search: error = %v, want ErrStaleResponse", err)
	}
	if _, added, err := svc.LoadMore(ctx, id, snap.Generation); err != nil || len(added) != 20 {
		t.Errorf("load more for current search: added=%d err=%v", len(added), err)
	}
}

func TestSearchService_LoadMoreUnknownSession(t *testing.T) {
	svc := newTestSearchService(testutil.NewPagedProvider(45), 20)
	if _, _, err := svc.LoadMore(context.Background(), "nope", 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestSearchService_PageSize(t *testing.T) {
	provider := testutil.NewPagedProvider(45)
	svc := newTestSearchService(provider, 0)
	if svc.PageSize() != models.DefaultPageSize {
		t.Errorf("PageSize() = %d, want default %d", svc.PageSize(), models.DefaultPageSize)
	}

	page, err := svc.SearchPage(context.Background(), ParseSearchForm("pasta", "", ""), 40, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Results) != 5 || page.Offset != 40 {
		t.Errorf("results=%d offset=%d, want 5/40", len(page.Results), page.Offset)
	}
	if provider.Searches[0].Number != models.DefaultPageSize {
		t.Errorf("number = %d, want %d", provider.Searches[0].Number, models.DefaultPageSize)
	}
}

func TestRecipeService_GetRecipeByID(t *testing.T) {
	provider := &testutil.MockRecipeProvider{
		GetByIDFunc: func(ctx context.Context, id int) (*models.RecipeDetail, error) {
			if id != 716429 {
				t.Errorf("id = %d, want 716429", id)
			}
			return testutil.TestRecipeDetail(), nil
		},
	}
	svc := NewRecipeService(&config.Config{}, provider)
	detail, err := svc.GetRecipeByID(context.Background(), 716429)
	if err != nil {
		t.Fatal(err)
	}
	if detail.Title == "" {
		t.Error("expected a populated recipe")
	}
}
