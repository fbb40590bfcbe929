package orchestration

import "context"

// bootstrapResult carries the run's single session token plus what the
// bootstrap step actually did, for the final report.
type bootstrapResult struct {
	token        string
	bootstrapped bool // admin and endpoint were created this run
	setupSkipped bool // setup was requested but the instance was already initialized
}

// acquireSession obtains the run's one bearer token, performing first-time
// setup beforehand when it is both requested and needed.
//
// The instance moves from uninitialized to initialized at most once: admin
// creation, then a fresh session, then endpoint registration, in that
// order, each failure fatal. Requesting setup against an already
// initialized instance is a warning, not an error; the run falls through
// to plain authentication.
func (r *Reconciler) acquireSession(ctx context.Context, adminInitialized bool) (bootstrapResult, error) {
	if r.cfg.InitialSetup && adminInitialized {
		r.log.Info("warning: control plane already initialized, skipping initial setup")
	}

	if !r.cfg.InitialSetup || adminInitialized {
		token, err := r.api.Authenticate(ctx, r.cfg.AdminUsername, r.cfg.AdminPassword)
		if err != nil {
			return bootstrapResult{}, err
		}
		return bootstrapResult{
			token:        token,
			setupSkipped: r.cfg.InitialSetup && adminInitialized,
		}, nil
	}

	r.log.Info("fresh instance, performing initial setup", "username", r.cfg.AdminUsername, "endpoint", r.cfg.Endpoint)

	if err := r.api.InitAdmin(ctx, r.cfg.AdminUsername, r.cfg.AdminPassword); err != nil {
		return bootstrapResult{}, err
	}

	token, err := r.api.Authenticate(ctx, r.cfg.AdminUsername, r.cfg.AdminPassword)
	if err != nil {
		return bootstrapResult{}, err
	}

	if err := r.api.CreateEndpoint(ctx, token, r.cfg.Endpoint); err != nil {
		return bootstrapResult{}, err
	}

	return bootstrapResult{token: token, bootstrapped: true}, nil
}
