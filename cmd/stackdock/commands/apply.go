package commands

import (
	"github.com/spf13/cobra"

	"github.com/stackdock/stackdock/cmd/stackdock/handlers"
)

// Apply returns the command for provisioning the Portainer instance.
//
// This command runs the full workflow: reachability check, first-time
// setup if requested, authentication, and stack deployment.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect stackdock.yaml)
//	--dry-run: Show what would be deployed without creating anything
//
// Environment variables:
//
//	STACKDOCK_ADMIN_PASSWORD: Admin password (alternative to admin_password in config)
func Apply() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Deploy the declared stacks to the Portainer instance",
		Long: `Deploy the declared stacks to the Portainer instance.

This command checks the instance is reachable, performs first-time setup
when initial_setup is enabled and the instance is fresh, then creates
every declared stack that does not already exist. Stacks that exist are
skipped; a failed stack creation does not stop the remaining stacks.

If no config file is specified, it looks for stackdock.yaml in the
current directory. Use 'stackdock init' to create a configuration file.

Examples:
  # Deploy using stackdock.yaml in current directory
  stackdock apply

  # Deploy using a specific config file
  stackdock apply -c production.yaml

  # Show the plan without changing anything
  stackdock apply --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath, dryRun, verboseFlag(cmd))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: stackdock.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be deployed without creating anything")

	return cmd
}
