package orchestration

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/stackdock/stackdock/internal/config"
	"github.com/stackdock/stackdock/internal/platform/portainer"
)

// ErrEndpointNotFound is returned when the configured endpoint name is not
// registered on the control plane.
var ErrEndpointNotFound = errors.New("endpoint not found")

// ControlPlane is the remote API surface the reconciler drives. It is
// implemented by *portainer.Client.
type ControlPlane interface {
	Ping(ctx context.Context) error
	AdminInitialized(ctx context.Context) (bool, error)
	InitAdmin(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (string, error)
	CreateEndpoint(ctx context.Context, token, name string) error
	ListEndpoints(ctx context.Context, token string) ([]portainer.Endpoint, error)
	ListStackNames(ctx context.Context, token string) ([]string, error)
	CreateStack(ctx context.Context, token, name, composeFile string, endpointID int) error
}

// Reconciler drives one provisioning run.
type Reconciler struct {
	api    ControlPlane
	cfg    *config.Config
	log    logr.Logger
	dryRun bool
}

// NewReconciler creates a reconciler for the given control plane and
// desired configuration. With dryRun set, stacks are classified but never
// created.
func NewReconciler(api ControlPlane, cfg *config.Config, log logr.Logger, dryRun bool) *Reconciler {
	return &Reconciler{
		api:    api,
		cfg:    cfg,
		log:    log,
		dryRun: dryRun,
	}
}

// Reconcile runs the full workflow and returns the deployment report.
// Everything up to stack creation is a hard precondition: any failure
// there aborts the run with no report. Individual stack creations are the
// only fault-isolated step; their failures are absorbed into the report.
func (r *Reconciler) Reconcile(ctx context.Context) (*Report, error) {
	if err := r.api.Ping(ctx); err != nil {
		return nil, fmt.Errorf("control plane unreachable: %w", err)
	}

	initialized, err := r.api.AdminInitialized(ctx)
	if err != nil {
		return nil, err
	}

	boot, err := r.acquireSession(ctx, initialized)
	if err != nil {
		return nil, err
	}

	endpointID, err := r.resolveEndpoint(ctx, boot.token)
	if err != nil {
		return nil, err
	}

	existing, err := r.api.ListStackNames(ctx, boot.token)
	if err != nil {
		return nil, err
	}

	toCreate, skipped := classify(r.cfg.Stacks, lowerSet(existing))
	for _, s := range skipped {
		r.log.Info("stack already exists, skipping", "stack", s.Name)
	}

	report := &Report{
		Skipped:      skipped,
		Bootstrapped: boot.bootstrapped,
		SetupSkipped: boot.setupSkipped,
		DryRun:       r.dryRun,
	}

	if r.dryRun {
		report.Planned = toCreate
		return report, nil
	}

	for _, s := range toCreate {
		if err := r.api.CreateStack(ctx, boot.token, s.Name, s.ComposeFile, endpointID); err != nil {
			r.log.Error(err, "stack creation failed, continuing with remaining stacks", "stack", s.Name)
			report.Outcomes = append(report.Outcomes, Outcome{Stack: s, Created: false})
			continue
		}
		report.Outcomes = append(report.Outcomes, Outcome{Stack: s, Created: true})
	}

	return report, nil
}

// resolveEndpoint looks up the configured endpoint's numeric id. It always
// queries fresh rather than trusting a just-created endpoint's id, since
// the control plane may assign ids asynchronously.
func (r *Reconciler) resolveEndpoint(ctx context.Context, token string) (int, error) {
	endpoints, err := r.api.ListEndpoints(ctx, token)
	if err != nil {
		return 0, err
	}

	for _, ep := range endpoints {
		if ep.Name == r.cfg.Endpoint {
			r.log.Info("resolved endpoint", "endpoint", ep.Name, "id", ep.ID)
			return ep.ID, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrEndpointNotFound, r.cfg.Endpoint)
}
