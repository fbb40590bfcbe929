package orchestration

import (
	"context"

	"github.com/stackdock/stackdock/internal/platform/portainer"
)

// mockControlPlane implements ControlPlane with overridable behavior per
// operation and records the order of calls made against it.
type mockControlPlane struct {
	PingFunc             func(ctx context.Context) error
	AdminInitializedFunc func(ctx context.Context) (bool, error)
	InitAdminFunc        func(ctx context.Context, username, password string) error
	AuthenticateFunc     func(ctx context.Context, username, password string) (string, error)
	CreateEndpointFunc   func(ctx context.Context, token, name string) error
	ListEndpointsFunc    func(ctx context.Context, token string) ([]portainer.Endpoint, error)
	ListStackNamesFunc   func(ctx context.Context, token string) ([]string, error)
	CreateStackFunc      func(ctx context.Context, token, name, composeFile string, endpointID int) error

	calls []string
}

func (m *mockControlPlane) record(op string) { m.calls = append(m.calls, op) }

func (m *mockControlPlane) Ping(ctx context.Context) error {
	m.record("ping")
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *mockControlPlane) AdminInitialized(ctx context.Context) (bool, error) {
	m.record("admin check")
	if m.AdminInitializedFunc != nil {
		return m.AdminInitializedFunc(ctx)
	}
	return true, nil
}

func (m *mockControlPlane) InitAdmin(ctx context.Context, username, password string) error {
	m.record("admin init")
	if m.InitAdminFunc != nil {
		return m.InitAdminFunc(ctx, username, password)
	}
	return nil
}

func (m *mockControlPlane) Authenticate(ctx context.Context, username, password string) (string, error) {
	m.record("auth")
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, username, password)
	}
	return "mock-token", nil
}

func (m *mockControlPlane) CreateEndpoint(ctx context.Context, token, name string) error {
	m.record("endpoint create")
	if m.CreateEndpointFunc != nil {
		return m.CreateEndpointFunc(ctx, token, name)
	}
	return nil
}

func (m *mockControlPlane) ListEndpoints(ctx context.Context, token string) ([]portainer.Endpoint, error) {
	m.record("endpoint list")
	if m.ListEndpointsFunc != nil {
		return m.ListEndpointsFunc(ctx, token)
	}
	return []portainer.Endpoint{{ID: 1, Name: "local"}}, nil
}

func (m *mockControlPlane) ListStackNames(ctx context.Context, token string) ([]string, error) {
	m.record("stack list")
	if m.ListStackNamesFunc != nil {
		return m.ListStackNamesFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockControlPlane) CreateStack(ctx context.Context, token, name, composeFile string, endpointID int) error {
	m.record("stack create")
	if m.CreateStackFunc != nil {
		return m.CreateStackFunc(ctx, token, name, composeFile, endpointID)
	}
	return nil
}

func (m *mockControlPlane) callCount(op string) int {
	n := 0
	for _, c := range m.calls {
		if c == op {
			n++
		}
	}
	return n
}
