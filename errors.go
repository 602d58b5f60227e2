package openaccess

import "fmt"

// ConnectionError reports that a request never produced an HTTP
// response: DNS failure, connection refused or reset, timeout.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("openaccess: connection failed: %v (check that no other service is bound to the OpenAccess port)", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ServerError reports a non-200 HTTP response from the API.
type ServerError struct {
	StatusCode int
	Status     string
	// Body holds the raw response body, which usually carries the
	// vendor's error description.
	Body string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("openaccess: server error: %d %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("openaccess: server error: %d %s: %s", e.StatusCode, e.Status, e.Body)
}

// MalformedResponseError reports a response body that could not be
// decoded as JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("openaccess: malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// MissingFieldError reports a property absent from an instance's
// property value map during projection.
type MissingFieldError struct {
	TypeName string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("openaccess: %s item has no %q property", e.TypeName, e.Field)
}

// PageLimitError reports a paginated query whose advertised page count
// exceeds the client's ceiling. The server value is reported as-is; a
// pathological total_pages would otherwise drive unbounded requests.
type PageLimitError struct {
	TotalPages int
	Limit      int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("openaccess: server reports %d pages, refusing to fetch more than %d", e.TotalPages, e.Limit)
}
