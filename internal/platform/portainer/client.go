package portainer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// DefaultTimeout bounds every request the client makes. Portainer calls are
// single request/response exchanges, so a finite per-request timeout is the
// only cancellation mechanism besides the caller's context.
const DefaultTimeout = 30 * time.Second

// endpointCreationLocal is Portainer's creation type for a local standalone
// Docker environment.
const endpointCreationLocal = "1"

// Endpoint is a registered target environment on the control plane.
type Endpoint struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

// Client is a stateless binding to one Portainer instance. It holds no
// session state; bearer tokens are passed per call.
type Client struct {
	rootURL    string
	httpClient *http.Client
	log        logr.Logger
}

// Option customises client construction.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithInsecureTLS disables TLS certificate verification. Portainer ships
// with a self-signed certificate, so callers may opt in explicitly; the
// default verifies as usual.
func WithInsecureTLS() Option {
	return func(c *Client) {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- explicit opt-in
		c.httpClient.Transport = transport
	}
}

// WithLogger sets the logger used for progress and error reporting.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the Portainer instance at rootURL
// (https://<ip>:<port>).
func New(rootURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(rootURL), "/")
	if trimmed == "" {
		return nil, errors.New("root URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid root URL %q: %w", rootURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("root URL %q must use http or https", rootURL)
	}

	c := &Client{
		rootURL:    trimmed,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Ping probes the instance root and fails unless it answers successfully.
func (c *Client) Ping(ctx context.Context) error {
	c.log.Info("checking control plane reachability", "url", c.rootURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rootURL+"/", nil)
	if err != nil {
		return c.fail(&Error{Op: OpPing, Err: err})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(&Error{Op: OpPing, Err: err})
	}
	defer drainAndClose(resp.Body)

	if !successful(resp.StatusCode) {
		return c.fail(&Error{Op: OpPing, Status: resp.StatusCode})
	}
	return nil
}

// AdminInitialized reports whether the instance already has its admin user
// set up. Portainer answers 204 on an initialized instance; any other
// response means a fresh install. Only transport failure is an error.
func (c *Client) AdminInitialized(ctx context.Context) (bool, error) {
	c.log.Info("checking whether admin is initialized")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rootURL+"/api/users/admin/check", nil)
	if err != nil {
		return false, c.fail(&Error{Op: OpAdminCheck, Err: err})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, c.fail(&Error{Op: OpAdminCheck, Err: err})
	}
	defer drainAndClose(resp.Body)

	return resp.StatusCode == http.StatusNoContent, nil
}

// InitAdmin creates the admin user on a fresh instance. It always attempts
// creation; checking whether the instance is initialized is the caller's
// responsibility.
func (c *Client) InitAdmin(ctx context.Context, username, password string) error {
	c.log.Info("initializing admin user", "username", username)

	resp, err := c.postJSON(ctx, "/api/users/admin/init", credentials{Username: username, Password: password})
	if err != nil {
		return c.fail(&Error{Op: OpAdminInit, Err: err})
	}
	defer drainAndClose(resp.Body)

	if !successful(resp.StatusCode) {
		return c.fail(&Error{Op: OpAdminInit, Status: resp.StatusCode, Err: responseError(resp.Body)})
	}

	c.log.Info("admin user initialized", "username", username)
	return nil
}

// Authenticate exchanges credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, username, password string) (string, error) {
	c.log.Info("authenticating", "url", c.rootURL, "username", username)

	resp, err := c.postJSON(ctx, "/api/auth", credentials{Username: username, Password: password})
	if err != nil {
		return "", c.fail(&Error{Op: OpAuth, Err: err})
	}
	defer drainAndClose(resp.Body)

	if !successful(resp.StatusCode) {
		return "", c.fail(&Error{Op: OpAuth, Status: resp.StatusCode, Err: responseError(resp.Body)})
	}

	var out struct {
		JWT string `json:"jwt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", c.fail(&Error{Op: OpAuth, Status: resp.StatusCode, Err: fmt.Errorf("parse token response: %w", err)})
	}
	if out.JWT == "" {
		return "", c.fail(&Error{Op: OpAuth, Status: resp.StatusCode, Err: errors.New("token response contained no jwt")})
	}

	c.log.Info("authenticated, token received", "username", username)
	return out.JWT, nil
}

// CreateEndpoint registers a local standalone Docker endpoint under the
// given name.
func (c *Client) CreateEndpoint(ctx context.Context, token, name string) error {
	c.log.Info("creating endpoint", "endpoint", name)

	form := url.Values{
		"Name":                 {name},
		"EndpointCreationType": {endpointCreationLocal},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rootURL+"/api/endpoints", strings.NewReader(form.Encode()))
	if err != nil {
		return c.fail(&Error{Op: OpEndpointCreate, Err: err})
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(&Error{Op: OpEndpointCreate, Err: err})
	}
	defer drainAndClose(resp.Body)

	if !successful(resp.StatusCode) {
		return c.fail(&Error{Op: OpEndpointCreate, Status: resp.StatusCode, Err: responseError(resp.Body)})
	}

	c.log.Info("endpoint created", "endpoint", name)
	return nil
}

// ListEndpoints returns all registered endpoints.
func (c *Client) ListEndpoints(ctx context.Context, token string) ([]Endpoint, error) {
	c.log.Info("listing endpoints")

	var endpoints []Endpoint
	if err := c.getJSON(ctx, "/api/endpoints", token, OpEndpointList, &endpoints); err != nil {
		return nil, err
	}

	c.log.Info("received endpoints", "count", len(endpoints))
	return endpoints, nil
}

// ListStackNames returns the names of all stacks known to the control
// plane, case preserved.
func (c *Client) ListStackNames(ctx context.Context, token string) ([]string, error) {
	c.log.Info("listing stacks")

	var stacks []struct {
		Name string `json:"Name"`
	}
	if err := c.getJSON(ctx, "/api/stacks", token, OpStackList, &stacks); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(stacks))
	for _, s := range stacks {
		names = append(names, s.Name)
	}

	c.log.Info("received stacks", "count", len(names))
	return names, nil
}

// CreateStack uploads the compose file as a standalone file-based stack on
// the given endpoint. A missing or unreadable compose file is reported as a
// stack-create error like any other failure of this call.
func (c *Client) CreateStack(ctx context.Context, token, name, composeFile string, endpointID int) error {
	c.log.Info("creating stack", "stack", name, "endpointID", endpointID)

	body, contentType, err := stackUploadBody(name, composeFile)
	if err != nil {
		return c.fail(&Error{Op: OpStackCreate, Err: err})
	}

	reqURL := fmt.Sprintf("%s/api/stacks/create/standalone/file?type=2&method=file&endpointId=%d", c.rootURL, endpointID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, body)
	if err != nil {
		return c.fail(&Error{Op: OpStackCreate, Err: err})
	}
	req.Header.Set("Content-Type", contentType)
	c.authorize(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(&Error{Op: OpStackCreate, Err: err})
	}
	defer drainAndClose(resp.Body)

	if !successful(resp.StatusCode) {
		return c.fail(&Error{Op: OpStackCreate, Status: resp.StatusCode, Err: responseError(resp.Body)})
	}

	c.log.Info("stack created", "stack", name)
	return nil
}

// stackUploadBody builds the multipart payload for a file-based stack
// creation: a Name field plus the compose file contents. The file handle is
// closed before returning, whatever the outcome.
func stackUploadBody(name, composeFile string) (*bytes.Buffer, string, error) {
	f, err := os.Open(composeFile) // #nosec G304 -- path comes from the caller's own config
	if err != nil {
		return nil, "", fmt.Errorf("open compose file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("Name", name); err != nil {
		return nil, "", fmt.Errorf("write stack name field: %w", err)
	}
	part, err := mw.CreateFormFile("file", filepath.Base(composeFile))
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("read compose file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize upload body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rootURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

func (c *Client) getJSON(ctx context.Context, path, token, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rootURL+path, nil)
	if err != nil {
		return c.fail(&Error{Op: op, Err: err})
	}
	c.authorize(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(&Error{Op: op, Err: err})
	}
	defer drainAndClose(resp.Body)

	if !successful(resp.StatusCode) {
		return c.fail(&Error{Op: op, Status: resp.StatusCode, Err: responseError(resp.Body)})
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(&Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("parse response: %w", err)})
	}
	return nil
}

func (c *Client) authorize(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// fail logs an API error before handing it to the caller.
func (c *Client) fail(err *Error) error {
	c.log.Error(err, "control plane call failed", "op", err.Op)
	return err
}

func successful(status int) bool {
	return status >= 200 && status < 300
}

// responseError extracts a useful cause from an error response body.
// Portainer errors are JSON with a message field; anything else is kept as
// a trimmed snippet.
func responseError(body io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return errors.New(payload.Message)
	}
	return errors.New(strings.TrimSpace(string(data)))
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
