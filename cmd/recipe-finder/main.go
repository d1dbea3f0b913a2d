package main

import (
	"os"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/cli"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
)

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)
}

// Entry point for the web server and CLI.
func main() {
	defer logger.Sync()
	cli.Execute()
}
