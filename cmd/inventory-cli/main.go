package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/inventory-keeper/internal/client/cli"
	"github.com/magabrotheeeer/inventory-keeper/internal/client/config"
)

func main() {
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to initialize client: %v", err)
	}

	app.Run(ctx)
}
