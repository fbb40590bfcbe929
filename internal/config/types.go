// Package config defines the declarative deployment configuration and its
// loading, validation, and authoring helpers.
package config

import "time"

const (
	// DefaultConfigFile is the config file looked up in the working
	// directory when no path is given.
	DefaultConfigFile = "stackdock.yaml"

	// EnvAdminPassword overrides admin_password from the environment so
	// the credential can stay out of the config file.
	EnvAdminPassword = "STACKDOCK_ADMIN_PASSWORD"

	// DefaultRequestTimeout bounds each control-plane request.
	DefaultRequestTimeout = 30 * time.Second
)

// Stack declares one desired stack: its name and the local compose file
// that defines it.
type Stack struct {
	Name        string `mapstructure:"name" yaml:"name"`
	ComposeFile string `mapstructure:"compose_file" yaml:"compose_file"`
}

// Config holds the full declarative input for one provisioning run.
type Config struct {
	// RootURL is the https://<ip>:<port> of the Portainer instance.
	RootURL string `mapstructure:"root_url" yaml:"root_url"`

	// InitialSetup requests first-time setup of the admin user and
	// endpoint. Enable for a fresh instance that has never been logged
	// into.
	InitialSetup bool `mapstructure:"initial_setup" yaml:"initial_setup"`

	// AdminUsername and AdminPassword are the credentials to log in
	// with, or to create when InitialSetup is set.
	AdminUsername string `mapstructure:"admin_username" yaml:"admin_username"`
	AdminPassword string `mapstructure:"admin_password" yaml:"admin_password,omitempty"`

	// Endpoint is the name of the environment stacks are deployed to,
	// created during initial setup when missing.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Stacks is the desired stack list. At least one entry is required.
	Stacks []Stack `mapstructure:"stacks" yaml:"stacks"`

	// InsecureSkipTLSVerify disables certificate verification towards
	// the instance. Off by default; Portainer's self-signed certificate
	// requires an explicit opt-in.
	InsecureSkipTLSVerify bool `mapstructure:"insecure_skip_tls_verify" yaml:"insecure_skip_tls_verify,omitempty"`

	// RequestTimeout bounds each control-plane request. Defaults to
	// DefaultRequestTimeout.
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout,omitempty"`
}
