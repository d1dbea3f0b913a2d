package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/cache"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUpstream answers complexSearch with a single result and counts calls.
func fakeUpstream(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/recipes/complexSearch":
			w.Write([]byte(`{"results":[{"id":7,"title":"Cacio e Pepe","image":"https://img.spoonacular.com/recipes/7.jpg","cuisines":["Italian"]}],"totalResults":1}`))
		case strings.HasSuffix(r.URL.Path, "/information"):
			w.Write([]byte(`{"id":7,"title":"Cacio e Pepe","extendedIngredients":[{"original":"200 g spaghetti"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testConfig(baseURL string) *config.Config {
	opts, _ := config.LoadSearchOptions("")
	return &config.Config{
		EnvVars: config.EnvVars{
			SpoonacularAPIKey: "k",
			SpoonacularURL:    baseURL,
			ImageHost:         "img.spoonacular.com",
			PageSize:          20,
			RequestTimeout:    time.Second,
			CacheTTL:          time.Minute,
			SessionTTL:        time.Minute,
			MaxSessions:       16,
			RateLimitRPS:      1000,
		},
		Options: opts,
	}
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSetupRouter_OpsRoutes(t *testing.T) {
	upstream, _ := fakeUpstream(t)
	r, err := SetupRouter(testConfig(upstream.URL), cache.NewMemoryCache(16, time.Minute))
	require.NoError(t, err)

	w := get(r, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://img.spoonacular.com")

	w = get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipe_finder_http_requests_total")

	w = get(r, "/static/placeholder.svg")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<svg")
}

func TestSetupRouter_PagesUseCache(t *testing.T) {
	upstream, calls := fakeUpstream(t)
	r, err := SetupRouter(testConfig(upstream.URL), cache.NewMemoryCache(16, time.Minute))
	require.NoError(t, err)

	w := get(r, "/recipes?query=cacio")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Cacio e Pepe")
	assert.Contains(t, w.Body.String(), "Showing 1 of 1 recipes")

	w = get(r, "/recipes?query=cacio")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), calls.Load(), "second identical search should be served from cache")

	w = get(r, "/recipes/7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "200 g spaghetti")
}

func TestSetupRouter_APIWithRedisCache(t *testing.T) {
	upstream, calls := fakeUpstream(t)
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)

	r, err := SetupRouter(testConfig(upstream.URL), cache.NewRedisCache(client, time.Minute))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w := get(r, "/api/v1/recipes/7")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Cacio e Pepe"`)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.NotEmpty(t, mr.Keys())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/7", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig(t *testing.T) {
	cfg := &config.Config{}
	assert.True(t, corsConfig(cfg).AllowAllOrigins)

	cfg.EnvVars.CORSOrigins = "https://a.example, https://b.example,"
	c := corsConfig(cfg)
	assert.False(t, c.AllowAllOrigins)
	assert.True(t, c.AllowCredentials)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowOrigins)
}
