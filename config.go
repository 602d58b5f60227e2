package openaccess

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the deployment-specific constants the client needs.
// It is always injected explicitly at construction; nothing in this
// package reads the environment on its own.
type Config struct {
	// APIURL is the base URL of the OpenAccess service, e.g.
	// "https://host:8080/api/access/onguard/openaccess/".
	APIURL string
	// ApplicationID is the integration's vendor-issued Application-Id.
	ApplicationID string
	// PageSize is the page size for instance queries; zero means
	// [DefaultPageSize].
	PageSize int
}

// LoadConfig reads Config from the process environment, after loading
// the named dotenv files (".env" when none are given, matching the
// vendor sample tooling). A missing dotenv file is not an error; the
// environment alone may carry the values.
//
// Keys: API_URL, APPLICATION_ID, DEFAULT_PAGE_SIZE.
func LoadConfig(filenames ...string) (Config, error) {
	_ = godotenv.Load(filenames...)

	cfg := Config{
		APIURL:        os.Getenv("API_URL"),
		ApplicationID: os.Getenv("APPLICATION_ID"),
	}

	if cfg.APIURL == "" {
		return Config{}, fmt.Errorf("openaccess: API_URL is not set")
	}

	if raw := os.Getenv("DEFAULT_PAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("openaccess: invalid DEFAULT_PAGE_SIZE %q: %w", raw, err)
		}
		cfg.PageSize = size
	}

	return cfg, nil
}

// NewFromConfig creates a client from an explicit Config. Options are
// applied after the config, so they win on overlap.
func NewFromConfig(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.PageSize > 0 {
		opts = append([]ClientOption{WithPageSize(cfg.PageSize)}, opts...)
	}

	return New(cfg.APIURL, cfg.ApplicationID, opts...)
}
