package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/stackdock/stackdock/internal/ui"
)

// Doctor probes the configured Portainer instance and reports whether it
// is reachable and whether the admin user has been initialized.
func Doctor(ctx context.Context, configPath string, jsonOutput, verbose bool) error {
	log := newLogger(verbose)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	api, err := newControlPlane(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	report := ui.DoctorReport{
		RootURL:  cfg.RootURL,
		Endpoint: cfg.Endpoint,
		Stacks:   len(cfg.Stacks),
	}

	if err := api.Ping(ctx); err != nil {
		report.Error = err.Error()
		return renderDoctor(report, jsonOutput)
	}
	report.Reachable = true

	initialized, err := api.AdminInitialized(ctx)
	if err != nil {
		report.Error = err.Error()
		return renderDoctor(report, jsonOutput)
	}
	report.AdminInitialized = initialized

	return renderDoctor(report, jsonOutput)
}

func renderDoctor(report ui.DoctorReport, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println(ui.RenderDoctor(report))
	return nil
}
