// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/stackdock/stackdock/internal/config"
	"github.com/stackdock/stackdock/internal/orchestration"
	"github.com/stackdock/stackdock/internal/platform/portainer"
	"github.com/stackdock/stackdock/internal/ui"
)

// Reconciler interface for testing - matches orchestration.Reconciler.
type Reconciler interface {
	Reconcile(ctx context.Context) (*orchestration.Report, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// findConfigFile finds the default config file.
	findConfigFile = config.FindConfigFile

	// newControlPlane creates a client for the configured instance.
	newControlPlane = func(cfg *config.Config, log logr.Logger) (orchestration.ControlPlane, error) {
		opts := []portainer.Option{
			portainer.WithTimeout(cfg.RequestTimeout),
			portainer.WithLogger(log),
		}
		if cfg.InsecureSkipTLSVerify {
			opts = append(opts, portainer.WithInsecureTLS())
		}
		return portainer.New(cfg.RootURL, opts...)
	}

	// newReconciler creates a reconciler for one provisioning run.
	newReconciler = func(api orchestration.ControlPlane, cfg *config.Config, log logr.Logger, dryRun bool) Reconciler {
		return orchestration.NewReconciler(api, cfg, log, dryRun)
	}
)

// Apply deploys the declared stacks to the configured Portainer instance.
//
// The workflow:
//  1. Loads and validates the deployment configuration
//  2. Checks the instance is reachable
//  3. Performs first-time setup (admin user, endpoint) when requested
//     and the instance is fresh
//  4. Creates every declared stack that does not already exist
//
// Existing stacks are skipped by case-insensitive name. A failed stack
// creation is reported but does not stop the remaining stacks; only the
// steps before stack creation abort the run.
func Apply(ctx context.Context, configPath string, dryRun, verbose bool) error {
	log := newLogger(verbose)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Info("applying configuration", "instance", cfg.RootURL, "stacks", len(cfg.Stacks))

	api, err := newControlPlane(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	report, err := newReconciler(api, cfg, log, dryRun).Reconcile(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.RenderSummary(report))
	return nil
}

// loadConfig loads and validates the deployment configuration.
// If configPath is empty, it looks for stackdock.yaml in the current
// directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'stackdock init' to create one", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
