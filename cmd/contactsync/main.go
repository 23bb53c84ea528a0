package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/app"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("contactsync")
	cfg, err := config.GetDaemonConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("dsn", cfg.Storage.DSN).
		Str("address", cfg.Server.HTTPAddress).
		Str("bridge", cfg.Adapter.HTTPAddress).
		Bool("auth", cfg.App.TokenSignKey != "").
		Msg("received configs")

	ctx := context.Background()

	daemon, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init daemon error")
	}

	if err = daemon.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("daemon run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
