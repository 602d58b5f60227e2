package openaccess

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultPageSize is the page size used for instance queries unless
	// overridden with [WithPageSize].
	DefaultPageSize = 100
	// DefaultMaxPages caps how many pages a single aggregated query may
	// fetch. A response advertising more pages fails with [PageLimitError].
	DefaultMaxPages = 1000

	modulePath = "github.com/accessly/openaccess"
)

// Client holds configuration needed to call the OpenAccess API.
// Use [New] to create a new client.
//
// A Client is safe for concurrent use: the session token and the cached
// panel list are guarded internally.
type Client struct {
	baseURL       string
	applicationID string

	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger

	pageSize int
	maxPages int
	rawQuery bool
	insecure bool

	session *sessionStore

	panelsMU sync.Mutex
	panels   []Panel
}

// ClientOption configures a Client before use.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
//
// Some OpenAccess deployments ship with an invalid certificate; this is
// the documented workaround for them. It weakens transport security and
// must be an explicit choice, never a default.
func WithInsecureSkipVerify() ClientOption {
	return func(c *Client) {
		c.insecure = true
	}
}

// WithPageSize sets the page size for paginated instance queries.
func WithPageSize(size int) ClientOption {
	return func(c *Client) {
		c.pageSize = size
	}
}

// WithMaxPages sets the page ceiling for aggregated queries.
func WithMaxPages(pages int) ClientOption {
	return func(c *Client) {
		c.maxPages = pages
	}
}

// WithRawQuery keeps filter and parameter values unencoded in request
// URLs, byte-for-byte compatible with servers that expect literal
// filter expressions such as "panelid = 5". Callers are then
// responsible for values free of '&' and other reserved characters.
func WithRawQuery() ClientOption {
	return func(c *Client) {
		c.rawQuery = true
	}
}

// WithLogger enables debug logging of requests and response statuses.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets a custom User-Agent header for API requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates an OpenAccess API client for the service rooted at
// baseURL, e.g. "https://host:8080/api/access/onguard/openaccess/".
// The Application-Id is issued by the vendor per integration.
func New(baseURL, applicationID string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("openaccess: base URL is required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		baseURL:       baseURL,
		applicationID: applicationID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		pageSize: DefaultPageSize,
		maxPages: DefaultMaxPages,
		session:  &sessionStore{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userAgent == "" {
		c.userAgent = userAgent()
	}
	if c.insecure {
		c.httpClient.Transport = insecureTransport(c.httpClient.Transport)
	}

	return c, nil
}

// insecureTransport clones rt with TLS verification disabled.
func insecureTransport(rt http.RoundTripper) http.RoundTripper {
	t, ok := rt.(*http.Transport)
	if !ok {
		t, _ = http.DefaultTransport.(*http.Transport)
	}
	t = t.Clone()
	if t.TLSClientConfig == nil {
		t.TLSClientConfig = &tls.Config{}
	}
	t.TLSClientConfig.InsecureSkipVerify = true
	return t
}

// version returns the module version of the openaccess package.
// It returns "devel" if built without module version information.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			if dep.Version == "(devel)" {
				return "devel"
			}

			return dep.Version
		}
	}

	if info.Main.Path == modulePath {
		if info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		// If main version is (devel), we can try to read vcs revision
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return "devel+" + setting.Value[:7]
			}
		}
	}

	return "devel"
}

// userAgent returns the default User-Agent string for this package.
func userAgent() string {
	v := version()
	goVersion := runtime.Version()
	os := runtime.GOOS
	arch := runtime.GOARCH
	return fmt.Sprintf("go-openaccess/%s (%s; %s/%s)", v, goVersion, os, arch)
}
