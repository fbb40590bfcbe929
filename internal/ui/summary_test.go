package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackdock/stackdock/internal/config"
	"github.com/stackdock/stackdock/internal/orchestration"
)

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	report := &orchestration.Report{
		Outcomes: []orchestration.Outcome{
			{Stack: config.Stack{Name: "pihole"}, Created: true},
			{Stack: config.Stack{Name: "grafana"}, Created: false},
		},
		Skipped:      []config.Stack{{Name: "uptime"}},
		Bootstrapped: true,
	}

	out := RenderSummary(report)
	assert.Contains(t, out, "initial setup performed")
	assert.Contains(t, out, "pihole created")
	assert.Contains(t, out, "grafana failed to create")
	assert.Contains(t, out, "uptime already exists, skipped")
	assert.Contains(t, out, "1 created, 1 failed, 1 skipped")
	assert.Contains(t, out, "(changed)")
}

func TestRenderSummary_NoChanges(t *testing.T) {
	t.Parallel()

	out := RenderSummary(&orchestration.Report{
		Skipped: []config.Stack{{Name: "pihole"}},
	})
	assert.Contains(t, out, "0 created, 0 failed, 1 skipped")
	assert.Contains(t, out, "(no changes)")
}

func TestRenderSummary_SetupSkippedWarning(t *testing.T) {
	t.Parallel()

	out := RenderSummary(&orchestration.Report{SetupSkipped: true})
	assert.Contains(t, out, "already initialized")
}

func TestRenderSummary_DryRun(t *testing.T) {
	t.Parallel()

	out := RenderSummary(&orchestration.Report{
		DryRun:  true,
		Planned: []config.Stack{{Name: "pihole"}},
		Skipped: []config.Stack{{Name: "grafana"}},
	})
	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "pihole would be created")
	assert.Contains(t, out, "1 to create, 1 skipped")
}

func TestRenderDoctor(t *testing.T) {
	t.Parallel()

	t.Run("reachable and initialized", func(t *testing.T) {
		t.Parallel()
		out := RenderDoctor(DoctorReport{
			RootURL:          "https://portainer.local:9443",
			Endpoint:         "local",
			Stacks:           2,
			Reachable:        true,
			AdminInitialized: true,
		})
		assert.Contains(t, out, "instance reachable")
		assert.Contains(t, out, "admin initialized")
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()
		out := RenderDoctor(DoctorReport{
			RootURL:   "https://portainer.local:9443",
			Endpoint:  "local",
			Reachable: false,
			Error:     "connection refused",
		})
		assert.Contains(t, out, "instance unreachable")
		assert.Contains(t, out, "connection refused")
	})

	t.Run("fresh instance", func(t *testing.T) {
		t.Parallel()
		out := RenderDoctor(DoctorReport{Reachable: true})
		assert.Contains(t, out, "initial_setup: true")
	})
}
