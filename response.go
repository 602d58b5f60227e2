package openaccess

import (
	"fmt"
	"strconv"
)

// Page is one page of an instance query as returned by the API.
type Page struct {
	PageNumber int    `json:"page_number"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	TotalItems int    `json:"total_items"`
	Count      int    `json:"count"`
	Items      []Item `json:"item_list"`
}

// Item is the vendor's generic representation of a single instance: a
// type name plus a free-form property map. Projection into typed
// records happens per domain type (see panel.go, reader.go, ...).
type Item struct {
	Type       string         `json:"type_name"`
	Properties map[string]any `json:"property_value_map"`
}

// stringProp extracts a property as a string. Servers are inconsistent
// about numeric identifiers ("ID": 1 vs "ID": "1"); both forms project
// to the same string.
func (i Item) stringProp(typeName, key string) (string, error) {
	v, ok := i.Properties[key]
	if !ok {
		return "", &MissingFieldError{TypeName: typeName, Field: key}
	}

	switch v := v.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}

// boolProp extracts a property compared against boolean true, the way
// the panel online flag is defined. Absent key is an error; any
// non-true value, including non-boolean ones, is false.
func (i Item) boolProp(typeName, key string) (bool, error) {
	v, ok := i.Properties[key]
	if !ok {
		return false, &MissingFieldError{TypeName: typeName, Field: key}
	}

	b, ok := v.(bool)
	return ok && b, nil
}
