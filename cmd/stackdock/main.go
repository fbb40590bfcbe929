// Package main is the entry point for the stackdock CLI.
//
// stackdock is a command-line tool for provisioning a Portainer control
// plane from a declarative YAML file. It bootstraps a fresh instance
// (admin user and endpoint) when asked to, then deploys the declared
// compose stacks, skipping any that already exist.
//
// Commands: init, apply, doctor, version, completion.
//
// For detailed usage information, run:
//
//	stackdock --help
package main

import (
	"fmt"
	"os"

	"github.com/stackdock/stackdock/cmd/stackdock/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
