package openaccess

import (
	"context"
	"net/http"
	"testing"
)

func TestRetrieveReaders(t *testing.T) {
	var filters []string

	c, _ := serverClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filters = append(filters, q.Get("filter"))

		if q.Get("type_name") != TypeReader {
			t.Errorf("type_name = %q, want %q", q.Get("type_name"), TypeReader)
		}

		_, _ = w.Write([]byte(`{
			"page_number": 1, "total_pages": 1, "count": 2,
			"item_list": [
				{"type_name": "Lnl_Reader", "property_value_map":
					{"PanelID": "5", "ReaderID": "1", "Name": "Front Door", "ControlType": "2", "HostName": "acs-01"}},
				{"type_name": "Lnl_Reader", "property_value_map":
					{"PanelID": 5, "ReaderID": 2, "Name": "Back Door", "ControlType": "2", "HostName": "acs-01"}}
			]
		}`))
	}))

	readers, err := c.RetrieveReaders(context.Background(), "5")
	if err != nil {
		t.Fatalf("RetrieveReaders() error = %v", err)
	}

	want := []Reader{
		{PanelID: "5", ID: "1", Name: "Front Door", Type: "2", HostName: "acs-01"},
		{PanelID: "5", ID: "2", Name: "Back Door", Type: "2", HostName: "acs-01"},
	}
	if len(readers) != len(want) {
		t.Fatalf("expected %d readers, got %d", len(want), len(readers))
	}
	for i := range want {
		if readers[i] != want[i] {
			t.Errorf("readers[%d] = %+v, want %+v", i, readers[i], want[i])
		}
	}

	if len(filters) != 1 || filters[0] != "panelid = 5" {
		t.Errorf("filters = %v, want a single 'panelid = 5'", filters)
	}
}

func TestRetrieveReaders_EmptyPanel(t *testing.T) {
	calls := 0
	c, _ := serverClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		// Filtered queries report the filtered count as zero while
		// total_pages still reflects the unfiltered listing.
		_, _ = w.Write([]byte(`{"page_number": 1, "total_pages": 4, "count": 0, "item_list": []}`))
	}))

	readers, err := c.RetrieveReaders(context.Background(), "9")
	if err != nil {
		t.Fatalf("RetrieveReaders() error = %v", err)
	}

	if len(readers) != 0 {
		t.Errorf("expected no readers, got %v", readers)
	}

	if calls != 1 {
		t.Errorf("expected exactly 1 request for an empty panel, got %d", calls)
	}
}
