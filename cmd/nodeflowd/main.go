/*
 * Copyright 2026 Opsfabric, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/opsfabric/nodeflow/pkg/config"
	"github.com/opsfabric/nodeflow/pkg/logger"
	"github.com/opsfabric/nodeflow/pkg/natsutil"
	"github.com/opsfabric/nodeflow/pkg/netbox"
	"github.com/opsfabric/nodeflow/pkg/provision"
	"github.com/opsfabric/nodeflow/pkg/subscription"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/nodeflow/nodeflow.json", "Path to nodeflow config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Step 1: Load configuration
	cfgLoader := config.NewConfig(nil)

	var cfg provision.Config

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	// Step 2: Create logger from loaded config
	logConfig := cfg.Logging
	if logConfig.Level == "" {
		logConfig = logger.Config{
			Level:  "info",
			Output: "stdout",
		}
	}

	mainLogger, err := logger.New(logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Step 3: Wire the inventory client and the event publisher
	inventory, err := netbox.NewClient(cfg.NetBox, mainLogger)
	if err != nil {
		return err
	}

	var publisher provision.EventPublisher

	if cfg.NATSURL != "" {
		eventPublisher, nc, err := natsutil.ConnectWithEventPublisher(ctx, cfg.NATSURL, cfg.StreamName)
		if err != nil {
			return fmt.Errorf("failed to set up event publishing: %w", err)
		}
		defer nc.Close()

		publisher = eventPublisher

		mainLogger.Info().Str("nats_url", cfg.NATSURL).Str("stream", cfg.StreamName).Msg("Event publishing enabled")
	}

	// Step 4: Run the validation service until shutdown
	svc, err := provision.NewService(&cfg, inventory, subscription.NewStore(), publisher, nil, mainLogger)
	if err != nil {
		return err
	}

	if err := svc.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	mainLogger.Info().Msg("Shutting down")

	return nil
}
