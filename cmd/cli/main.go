package main

import (
	"context"
	"log"

	"github.com/rewearapp/rewear/internal/client/cli"
	"github.com/rewearapp/rewear/internal/client/config"
	"github.com/rewearapp/rewear/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
