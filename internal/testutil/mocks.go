package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
)

// --- MockRecipeProvider ---

// MockRecipeProvider is a mock implementation of spoonacular.RecipeProvider.
type MockRecipeProvider struct {
	SearchFunc  func(ctx context.Context, params models.SearchParams) (*models.ResultPage, error)
	GetByIDFunc func(ctx context.Context, id int) (*models.RecipeDetail, error)

	mu       sync.Mutex
	Searches []models.SearchParams
}

func (m *MockRecipeProvider) Search(ctx context.Context, params models.SearchParams) (*models.ResultPage, error) {
	m.mu.Lock()
	m.Searches = append(m.Searches, params)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, params)
	}
	return nil, fmt.Errorf("Search not configured")
}

func (m *MockRecipeProvider) GetByID(ctx context.Context, id int) (*models.RecipeDetail, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("GetByID not configured")
}

// SearchCount returns how many searches were issued.
func (m *MockRecipeProvider) SearchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Searches)
}

// --- PagedProvider ---

// PagedProvider serves offset/limit pages over a fixed number of results,
// the way the recipe API does.
type PagedProvider struct {
	MockRecipeProvider
	Total int
}

// NewPagedProvider creates a provider reporting total results.
func NewPagedProvider(total int) *PagedProvider {
	p := &PagedProvider{Total: total}
	p.SearchFunc = func(ctx context.Context, params models.SearchParams) (*models.ResultPage, error) {
		return Page(params.Offset, params.Number, p.Total), nil
	}
	return p
}

// Page builds the page at offset of a result set with total entries.
func Page(offset, number, total int) *models.ResultPage {
	results := []models.RecipeSummary{}
	for i := offset; i < offset+number && i < total; i++ {
		results = append(results, TestSummary(i+1))
	}
	return &models.ResultPage{
		Results:      results,
		TotalResults: total,
		Offset:       offset,
		Number:       number,
	}
}
