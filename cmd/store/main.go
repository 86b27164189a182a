package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/cli"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/config"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
