package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/router"
	"go.uber.org/zap"
)

// NewServeCommand builds the "serve" command.
func NewServeCommand(root *RootCommand) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Example: `  # Start on $PORT (default 8080)
  recipe-finder serve

  # Start on a different port
  recipe-finder serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), root, port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Server port (default from $PORT)")
	return cmd
}

func runServe(ctx context.Context, root *RootCommand, port string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := root.Config()
	if port == "" {
		port = cfg.EnvVars.Port
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	responseCache, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	r, err := router.SetupRouter(cfg, responseCache)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.EnvVars.RequestTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Get().Info("starting server", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-ctx.Done():
		logger.Get().Info("context cancelled, shutting down")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Get().Info("received signal, shutting down gracefully", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Get().Info("server stopped")
	return nil
}
