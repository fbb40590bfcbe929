package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackdock/stackdock/internal/config"
)

func TestInit_Success(t *testing.T) {
	saveAndRestoreFactories(t)

	isInteractiveTTY = func() bool { return true }
	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{
			RootURL:       "https://portainer.local:9443",
			AdminUsername: "admin",
			AdminPassword: "hunter2hunter2",
			Endpoint:      "local",
			StackName:     "pihole",
			ComposeFile:   "stacks/pihole.yml",
		}, nil
	}

	var writtenPath string
	var writtenCfg *config.Config
	writeConfig = func(cfg *config.Config, path string) error {
		writtenCfg = cfg
		writtenPath = path
		return nil
	}

	err := Init(context.Background(), "stackdock.yaml")
	require.NoError(t, err)
	assert.Equal(t, "stackdock.yaml", writtenPath)
	require.NotNil(t, writtenCfg)
	assert.Equal(t, "https://portainer.local:9443", writtenCfg.RootURL)
	require.Len(t, writtenCfg.Stacks, 1)
	assert.Equal(t, "pihole", writtenCfg.Stacks[0].Name)
}

func TestInit_NotATerminal(t *testing.T) {
	saveAndRestoreFactories(t)

	isInteractiveTTY = func() bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		t.Fatal("wizard should not run without a terminal")
		return nil, nil
	}

	err := Init(context.Background(), "stackdock.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)

	isInteractiveTTY = func() bool { return true }
	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return nil, errors.New("user aborted")
	}
	writeConfig = func(_ *config.Config, _ string) error {
		t.Fatal("writeConfig should not be called when the wizard is canceled")
		return nil
	}

	err := Init(context.Background(), "stackdock.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteError(t *testing.T) {
	saveAndRestoreFactories(t)

	isInteractiveTTY = func() bool { return true }
	fileExists = func(_ string) bool { return true }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{
			RootURL:       "https://portainer.local:9443",
			AdminUsername: "admin",
			AdminPassword: "hunter2hunter2",
			Endpoint:      "local",
			StackName:     "pihole",
			ComposeFile:   "stacks/pihole.yml",
		}, nil
	}
	writeConfig = func(_ *config.Config, _ string) error {
		return errors.New("permission denied")
	}

	err := Init(context.Background(), "stackdock.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
