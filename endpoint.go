package openaccess

import (
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/google/go-querystring/query"
)

// API versions per endpoint. The vendor versions endpoints
// independently; cardholders is the only one past 1.0.
const (
	versionAuthentication = "1.0"
	versionInstances      = "1.0"
	versionCardholders    = "1.2"
	versionDirectories    = "1.0"
	versionExecuteMethod  = "1.0"
)

// endpoint accumulates a versioned OpenAccess URL. The result always
// starts with base + path + "?version=" + version; parameters are
// appended in the order they were added.
type endpoint struct {
	sb  strings.Builder
	raw bool
}

// endpoint starts a URL for the named resource path and API version.
func (c *Client) endpoint(path, version string) *endpoint {
	e := &endpoint{raw: c.rawQuery}
	e.sb.WriteString(c.baseURL)
	e.sb.WriteString(path)
	e.sb.WriteString("?version=")
	e.sb.WriteString(version)
	return e
}

// param appends a single query parameter. In raw mode the value is
// written verbatim for wire compatibility with servers expecting
// literal filter expressions; a value containing '&' or other reserved
// characters then corrupts the URL, and that is the caller's contract
// to uphold. Otherwise the value is percent-encoded.
func (e *endpoint) param(key, value string) *endpoint {
	e.sb.WriteByte('&')
	e.sb.WriteString(key)
	e.sb.WriteByte('=')
	if e.raw {
		e.sb.WriteString(value)
	} else {
		e.sb.WriteString(url.QueryEscape(value))
	}
	return e
}

// params appends a struct of `url`-tagged parameters. Encoding is
// deterministic (keys sorted); in raw mode each value is re-appended
// verbatim via param to keep the wire format identical to hand-built
// URLs.
func (e *endpoint) params(v any) (*endpoint, error) {
	vals, err := query.Values(v)
	if err != nil {
		return e, err
	}

	if !e.raw {
		if enc := vals.Encode(); enc != "" {
			e.sb.WriteByte('&')
			e.sb.WriteString(enc)
		}
		return e, nil
	}

	for _, key := range sortedKeys(vals) {
		for _, value := range vals[key] {
			e.param(key, value)
		}
	}
	return e, nil
}

func (e *endpoint) String() string {
	return e.sb.String()
}

// sortedKeys matches the order url.Values.Encode uses, so both modes
// emit parameters identically.
func sortedKeys(vals url.Values) []string {
	return slices.Sorted(maps.Keys(vals))
}
