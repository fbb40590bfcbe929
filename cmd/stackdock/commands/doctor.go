package commands

import (
	"github.com/spf13/cobra"

	"github.com/stackdock/stackdock/cmd/stackdock/handlers"
)

// Doctor returns the command for diagnosing instance connectivity.
//
// This command validates the configuration, probes the instance, and
// reports whether it is reachable and whether the admin user has been
// initialized.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect stackdock.yaml)
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and instance connectivity",
		Long: `Diagnose your stackdock configuration and Portainer instance.

Validates the configuration file, then probes the instance:

  - Is the instance reachable?
  - Has the admin user been initialized?

Examples:
  # Diagnose using stackdock.yaml in current directory
  stackdock doctor

  # Get the result in JSON format
  stackdock doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath, jsonOutput, verboseFlag(cmd))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: stackdock.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
