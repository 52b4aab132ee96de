package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jbalodis/localnotes/internal/buildinfo"
	"github.com/jbalodis/localnotes/internal/cli"
	"github.com/jbalodis/localnotes/internal/config"
	"github.com/jbalodis/localnotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
