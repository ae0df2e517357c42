package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mkargin/shop-registry/config"
	"github.com/mkargin/shop-registry/internal/app"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadWithPrefix("USER_SVC")
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.BootstrapUser(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "user service stopped with error: %v", err)
	}
}
