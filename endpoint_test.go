package openaccess

import (
	"strings"
	"testing"
)

func testClient(t *testing.T, opts ...ClientOption) *Client {
	t.Helper()

	c, err := New("https://example.test/openaccess/", "test-app-id", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestEndpoint_VersionPrefix(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		path    string
		version string
	}{
		{
			name:    "instances",
			base:    "https://example.test/openaccess/",
			path:    "instances",
			version: "1.0",
		},
		{
			name:    "cardholders versioned differently",
			base:    "https://example.test/openaccess/",
			path:    "cardholders",
			version: "1.2",
		},
		{
			name:    "base without trailing slash is normalized",
			base:    "https://example.test/openaccess",
			path:    "authentication",
			version: "1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.base, "app")
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			got := c.endpoint(tt.path, tt.version).String()
			want := "https://example.test/openaccess/" + tt.path + "?version=" + tt.version
			if got != want {
				t.Errorf("endpoint = %q, want %q", got, want)
			}
		})
	}
}

func TestEndpoint_ParamOrderPreserved(t *testing.T) {
	c := testClient(t, WithRawQuery())

	got := c.endpoint("instances", "1.0").
		param("type_name", "Lnl_Reader").
		param("page_number", "2").
		param("filter", "panelid = 5").
		String()

	want := "https://example.test/openaccess/instances?version=1.0" +
		"&type_name=Lnl_Reader&page_number=2&filter=panelid = 5"
	if got != want {
		t.Errorf("endpoint = %q, want %q", got, want)
	}
}

func TestEndpoint_EncodedByDefault(t *testing.T) {
	c := testClient(t)

	got := c.endpoint("instances", "1.0").
		param("filter", "panelid = 5").
		String()

	if !strings.Contains(got, "filter=panelid+%3D+5") {
		t.Errorf("endpoint = %q, want percent-encoded filter value", got)
	}
	if strings.Contains(got, "panelid = 5") {
		t.Errorf("endpoint = %q, raw filter leaked into encoded mode", got)
	}
}

func TestEndpoint_ParamsStruct(t *testing.T) {
	params := InstanceParams{
		TypeName:   "Lnl_Panel",
		PageNumber: 1,
		PageSize:   100,
		OrderBy:    "name",
	}

	t.Run("encoded", func(t *testing.T) {
		c := testClient(t)

		e, err := c.endpoint("instances", "1.0").params(params)
		if err != nil {
			t.Fatalf("params() error = %v", err)
		}

		want := "https://example.test/openaccess/instances?version=1.0" +
			"&order_by=name&page_number=1&page_size=100&type_name=Lnl_Panel"
		if got := e.String(); got != want {
			t.Errorf("endpoint = %q, want %q", got, want)
		}
	})

	t.Run("raw mode emits identical parameters", func(t *testing.T) {
		c := testClient(t, WithRawQuery())

		e, err := c.endpoint("instances", "1.0").params(params)
		if err != nil {
			t.Fatalf("params() error = %v", err)
		}

		want := "https://example.test/openaccess/instances?version=1.0" +
			"&order_by=name&page_number=1&page_size=100&type_name=Lnl_Panel"
		if got := e.String(); got != want {
			t.Errorf("endpoint = %q, want %q", got, want)
		}
	})

	t.Run("raw filter stays literal", func(t *testing.T) {
		c := testClient(t, WithRawQuery())

		withFilter := params
		withFilter.TypeName = "Lnl_Reader"
		withFilter.Filter = "panelid = 5"

		e, err := c.endpoint("instances", "1.0").params(withFilter)
		if err != nil {
			t.Fatalf("params() error = %v", err)
		}

		if got := e.String(); !strings.Contains(got, "filter=panelid = 5") {
			t.Errorf("endpoint = %q, want literal filter expression", got)
		}
	})

	t.Run("empty optional fields omitted", func(t *testing.T) {
		c := testClient(t)

		e, err := c.endpoint("cardholders", "1.2").params(CardholderParams{})
		if err != nil {
			t.Fatalf("params() error = %v", err)
		}

		want := "https://example.test/openaccess/cardholders?version=1.2"
		if got := e.String(); got != want {
			t.Errorf("endpoint = %q, want %q", got, want)
		}
	})
}
