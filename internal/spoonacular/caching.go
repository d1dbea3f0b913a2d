package spoonacular

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/cache"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachingProvider decorates a RecipeProvider with a fixed-TTL response
// cache. Identical concurrent lookups share a single upstream call, which
// runs detached from any one caller's cancellation. Failures are never
// cached.
type CachingProvider struct {
	next  RecipeProvider
	cache cache.Cache
	group singleflight.Group
}

// NewCachingProvider wraps next with c.
func NewCachingProvider(next RecipeProvider, c cache.Cache) *CachingProvider {
	return &CachingProvider{next: next, cache: c}
}

// Search returns a cached page when one is fresh, otherwise asks next.
func (p *CachingProvider) Search(ctx context.Context, params models.SearchParams) (*models.ResultPage, error) {
	if params.Number <= 0 {
		params.Number = models.DefaultPageSize
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	key := "search:" + searchValues(params).Encode()

	var page models.ResultPage
	err := p.load(ctx, endpointSearch, key, &page, func(ctx context.Context) (any, error) {
		return p.next.Search(ctx, params)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID returns a cached recipe when one is fresh, otherwise asks next.
func (p *CachingProvider) GetByID(ctx context.Context, id int) (*models.RecipeDetail, error) {
	key := "recipe:" + strconv.Itoa(id)

	var detail models.RecipeDetail
	err := p.load(ctx, endpointDetail, key, &detail, func(ctx context.Context) (any, error) {
		return p.next.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (p *CachingProvider) load(ctx context.Context, endpoint, key string, out any, fetch func(context.Context) (any, error)) error {
	if b, ok, err := p.cache.Get(ctx, key); err != nil {
		logger.Get().Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		if err := json.Unmarshal(b, out); err == nil {
			cacheHits.WithLabelValues(endpoint).Inc()
			return nil
		}
		logger.Get().Warn("discarding undecodable cache entry", zap.String("key", key))
	}
	cacheMisses.WithLabelValues(endpoint).Inc()

	// The upstream call is bounded by the client timeout, not by the
	// caller that happened to start it.
	shared := context.WithoutCancel(ctx)
	ch := p.group.DoChan(key, func() (any, error) {
		res, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(res)
		if err != nil {
			return nil, err
		}
		if err := p.cache.Set(shared, key, b); err != nil {
			logger.Get().Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
		return b, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return json.Unmarshal(res.Val.([]byte), out)
	}
}
