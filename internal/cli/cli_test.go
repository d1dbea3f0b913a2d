package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
)

func newUpstream(t *testing.T, gotQuery *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"results":[
			{"id":1,"title":"Pad Thai","readyInMinutes":25,"cuisines":["Thai","Asian"]},
			{"id":2,"title":"Green Curry","cuisines":[]}
		],"totalResults":42}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCommand(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	root.loadConfig = func() (*config.Config, error) { return cfg, nil }

	var out bytes.Buffer
	cmd := root.Command()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func cliConfig(baseURL string) *config.Config {
	return &config.Config{EnvVars: config.EnvVars{
		SpoonacularAPIKey: "k",
		SpoonacularURL:    baseURL,
		PageSize:          20,
		RequestTimeout:    time.Second,
		CacheTTL:          time.Minute,
		CacheSize:         8,
		SessionTTL:        time.Minute,
		MaxSessions:       8,
	}}
}

func TestSearchCommand_Table(t *testing.T) {
	var query string
	srv := newUpstream(t, &query)

	out, err := runCommand(t, cliConfig(srv.URL), "search", "pad", "thai", "--cuisine", " Thai ", "--offset", "20")
	require.NoError(t, err)

	assert.Contains(t, query, "query=pad+thai")
	assert.Contains(t, query, "cuisine=Thai")
	assert.Contains(t, query, "offset=20")
	assert.NotContains(t, query, "maxReadyTime")

	assert.Contains(t, out, `Results for "pad thai", Thai cuisine`)
	assert.Contains(t, out, "Showing 21-22 of 42 recipes")
	assert.Contains(t, out, "Pad Thai")
	assert.Regexp(t, `2\s+Green Curry\s+-`, out)
}

func TestSearchCommand_JSON(t *testing.T) {
	var query string
	srv := newUpstream(t, &query)

	out, err := runCommand(t, cliConfig(srv.URL), "search", "curry", "--json", "-n", "5")
	require.NoError(t, err)

	var page models.ResultPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 42, page.TotalResults)
	assert.Equal(t, 5, page.Number)
	assert.Len(t, page.Results, 2)
}

func TestSearchCommand_EmptyCriteria(t *testing.T) {
	_, err := runCommand(t, cliConfig("http://127.0.0.1:1"), "search", "  ")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "enter search criteria"))
}

func TestSearchCommand_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	_, err := runCommand(t, cliConfig(srv.URL), "search", "pasta")
	require.Error(t, err)
	assert.Equal(t, "failed to fetch recipes: 402 Payment Required", err.Error())
}

func TestOpenCache(t *testing.T) {
	cfg := cliConfig("")
	c, closeFn, err := openCache(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()
	require.NoError(t, c.Set(context.Background(), "k", []byte("v")))

	mr := miniredis.RunT(t)
	cfg.EnvVars.RedisURL = "redis://" + mr.Addr()
	c, closeRedis, err := openCache(context.Background(), cfg)
	require.NoError(t, err)
	defer closeRedis()
	require.NoError(t, c.Set(context.Background(), "k", []byte("v")))
	assert.NotEmpty(t, mr.Keys())

	cfg.EnvVars.RedisURL = "not a url"
	_, _, err = openCache(context.Background(), cfg)
	assert.Error(t, err)
}
