package orchestration

import "github.com/stackdock/stackdock/internal/config"

// Outcome records one attempted stack creation. Skipped stacks never
// produce an Outcome.
type Outcome struct {
	Stack   config.Stack
	Created bool
}

// Report is the aggregate result of one provisioning run.
type Report struct {
	// Outcomes holds one entry per attempted stack, in declaration order.
	Outcomes []Outcome

	// Skipped lists desired stacks that already existed on the control
	// plane. They count toward neither success nor failure.
	Skipped []config.Stack

	// Planned lists the stacks that would have been created. Populated
	// only on dry runs, where Outcomes stays empty.
	Planned []config.Stack

	// Bootstrapped is set when this run created the admin user and
	// endpoint.
	Bootstrapped bool

	// SetupSkipped is set when initial setup was requested but the
	// instance was already initialized.
	SetupSkipped bool

	// DryRun marks a classification-only run.
	DryRun bool
}

// Created counts stacks successfully created this run.
func (r *Report) Created() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Created {
			n++
		}
	}
	return n
}

// Failed counts stacks whose creation was attempted and failed.
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Created()
}

// Changed reports whether the run altered remote state, true iff at least
// one stack was created.
func (r *Report) Changed() bool {
	return r.Created() > 0
}
