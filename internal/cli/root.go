// Package cli implements the recipe-finder command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/cache"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"go.uber.org/zap"
)

// RootCommand holds state shared by the sub-commands.
type RootCommand struct {
	cmd *cobra.Command
	cfg *config.Config

	// loadConfig is swapped out in tests.
	loadConfig func() (*config.Config, error)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *RootCommand {
	root := &RootCommand{loadConfig: loadConfig}

	cmd := &cobra.Command{
		Use:   "recipe-finder",
		Short: "Search recipes from the Spoonacular API",
		Long: `recipe-finder serves a recipe search web front-end over the
Spoonacular API and can run the same searches from the terminal.

Configuration is read from the environment; SPOONACULAR_API_KEY is required.`,
		SilenceUsage:      true,
		PersistentPreRunE: root.persistentPreRunE,
	}

	root.cmd = cmd
	cmd.AddCommand(NewServeCommand(root))
	cmd.AddCommand(NewSearchCommand(root))
	return root
}

func (r *RootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}
	r.cfg = cfg
	return nil
}

// Config returns the configuration loaded before the command ran.
func (r *RootCommand) Config() *config.Config {
	return r.cfg
}

// Command returns the cobra root command.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Command().ExecuteContext(context.Background()); err != nil {
		logger.Get().Error("command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// loadConfig loads and validates the environment configuration and the
// search form options.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.CheckConfigEnvFields(); err != nil {
		return nil, fmt.Errorf("missing required config fields: %w", err)
	}
	opts, err := config.LoadSearchOptions(cfg.EnvVars.SearchOptionsPath)
	if err != nil {
		return nil, err
	}
	cfg.Options = opts
	return cfg, nil
}

// openCache returns the Redis cache when REDIS_URL is set and a process
// local LRU otherwise. The returned func releases the connection.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	if cfg.EnvVars.RedisURL == "" {
		return cache.NewMemoryCache(cfg.EnvVars.CacheSize, cfg.EnvVars.CacheTTL), func() {}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.EnvVars.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Get().Info("using redis response cache")
	return cache.NewRedisCache(client, cfg.EnvVars.CacheTTL), func() { _ = client.Close() }, nil
}
