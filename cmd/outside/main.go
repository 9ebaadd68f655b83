// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package main implements the outside web service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/decarbonization/outside/internal/config"
	"github.com/decarbonization/outside/internal/i18n"
	"github.com/decarbonization/outside/internal/logger"
	"github.com/decarbonization/outside/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT,
		os.Interrupt)
	defer cancel()

	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	flag.Parse()
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}
	if *confPath != "" {
		file := filepath.Base(*confPath)
		path := filepath.Dir(*confPath)
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}
	log = logger.New(conf.LogLevel)

	bundle, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localization", logger.Err(err))
		os.Exit(1)
	}

	srv, err := server.New(conf, log, bundle)
	if err != nil {
		log.Error("failed to initialize outside service", logger.Err(err))
		os.Exit(1)
	}

	log.Info("starting outside service")
	if err = srv.Run(ctx); err != nil {
		log.Error("failed to run outside service", logger.Err(err))
	}
	log.Info("shutting down outside service")
}
