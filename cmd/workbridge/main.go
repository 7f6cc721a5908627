package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/workbridge/client/internal/app"
	"github.com/workbridge/client/internal/cli"
	"github.com/workbridge/client/internal/infrastructure/config"
	"github.com/workbridge/client/pkg/logger"
)

func main() {
	// A missing .env is normal; the environment alone is enough.
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env != "production",
		File:   cfg.LogFile,
	})
	defer logger.Close()
	log := logger.Get()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	return cli.NewRootCmd(a).ExecuteContext(ctx)
}
