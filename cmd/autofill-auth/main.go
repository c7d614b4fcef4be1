package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-autofill-keeper/internal/client"
	"github.com/MKhiriev/go-autofill-keeper/internal/config"
	"github.com/MKhiriev/go-autofill-keeper/internal/crypto"
	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/internal/store"
	"github.com/MKhiriev/go-autofill-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "autofill-auth"

func main() {
	printBuildInfo()

	cfg, err := config.GetGateConfig()
	if err != nil {
		logger.NewFileLogger(role, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger(role, cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	codec := crypto.NewFieldCodec(cfg.App.StoragePassphrase, cfg.App.StorageSalt)

	storages, err := store.NewStorages(ctx, cfg.Storage, codec, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	app := client.NewApp(cfg, storages, tui.New(os.Stdin, os.Stderr), os.Stdout, log)
	runErr := app.Run(ctx)

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close storages")
	}

	switch {
	case errors.Is(runErr, client.ErrNoResult):
		log.Warn().Msg("no result")
		os.Exit(1)
	case runErr != nil:
		log.Fatal().Err(runErr).Msg("autofill-auth run error")
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
