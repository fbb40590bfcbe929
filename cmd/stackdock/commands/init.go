package commands

import (
	"github.com/spf13/cobra"

	"github.com/stackdock/stackdock/cmd/stackdock/handlers"
)

// Init returns the command for interactively creating a configuration.
//
// This command guides users through creating a deployment configuration
// YAML file using an interactive wizard.
//
// Flags:
//
//	--output, -o: Path to output file (default "stackdock.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring your Portainer deployment
step by step. It will ask about:

  - Instance URL and TLS verification
  - Whether the instance needs first-time setup
  - Admin credentials
  - Endpoint name
  - Your first stack (name and compose file)

Additional stacks can be added to the generated YAML by hand.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "stackdock.yaml", "Output file path")

	return cmd
}
