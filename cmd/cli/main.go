package main

import (
	"context"
	"log"

	"github.com/osadchiy/chatfiles/internal/client/cli"
	"github.com/osadchiy/chatfiles/internal/client/config"
	"github.com/osadchiy/chatfiles/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	logger, err := logging.NewDefaultZapLogger(false)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
