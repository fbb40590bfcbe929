// Package orchestration coordinates one provisioning run against a
// Portainer control plane: reachability check, conditional first-time
// setup, session acquisition, endpoint resolution, and per-stack
// reconciliation with partial-failure aggregation.
package orchestration
