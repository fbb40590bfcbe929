package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult captures the answers of the interactive setup wizard.
type WizardResult struct {
	RootURL       string
	InitialSetup  bool
	AdminUsername string
	AdminPassword string
	Endpoint      string
	StackName     string
	ComposeFile   string
	InsecureTLS   bool
}

// RunWizard walks the user through creating a deployment configuration.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		AdminUsername: "admin",
		Endpoint:      "local",
		InitialSetup:  true,
	}

	form := huh.NewForm(
		// Instance
		huh.NewGroup(
			huh.NewInput().
				Title("Portainer URL").
				Description("https://<ip>:<port> of the instance").
				Placeholder("https://192.168.1.10:9443").
				Value(&result.RootURL).
				Validate(validateRootURL),

			huh.NewConfirm().
				Title("Perform initial setup?").
				Description("Enable for a fresh instance that has never been logged into").
				Value(&result.InitialSetup),

			huh.NewConfirm().
				Title("Skip TLS certificate verification?").
				Description("Only for instances with a self-signed certificate").
				Value(&result.InsecureTLS),
		),

		// Credentials and endpoint
		huh.NewGroup(
			huh.NewInput().
				Title("Admin username").
				Value(&result.AdminUsername).
				Validate(required("admin username")),

			huh.NewInput().
				Title("Admin password").
				Description("Leave empty to supply it via "+EnvAdminPassword).
				EchoMode(huh.EchoModePassword).
				Value(&result.AdminPassword),

			huh.NewInput().
				Title("Endpoint name").
				Description("The environment stacks are deployed to").
				Value(&result.Endpoint).
				Validate(required("endpoint name")),
		),

		// First stack
		huh.NewGroup(
			huh.NewInput().
				Title("First stack name").
				Placeholder("my-stack").
				Value(&result.StackName).
				Validate(required("stack name")),

			huh.NewInput().
				Title("Compose file path").
				Placeholder("./my-stack/docker-compose.yml").
				Value(&result.ComposeFile).
				Validate(required("compose file path")),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// ToConfig converts the wizard answers into a Config.
func (r *WizardResult) ToConfig() *Config {
	return &Config{
		RootURL:               strings.TrimSpace(r.RootURL),
		InitialSetup:          r.InitialSetup,
		AdminUsername:         r.AdminUsername,
		AdminPassword:         r.AdminPassword,
		Endpoint:              r.Endpoint,
		InsecureSkipTLSVerify: r.InsecureTLS,
		Stacks: []Stack{
			{Name: r.StackName, ComposeFile: r.ComposeFile},
		},
	}
}

func validateRootURL(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("enter a full http(s) URL")
	}
	return nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
