package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophgate/internal/cli"
	"github.com/dmitrijs2005/gophgate/internal/config"
)

// run builds the client and serves it until the user exits.
func run(ctx context.Context, cfg *config.Config) error {
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := run(ctx, cfg); err != nil {
		stop()
		log.Fatalf("%v", err)
	}

}
