package openaccess

import (
	"context"
	"net/http"
)

// Instance type names addressable through the instances endpoint.
const (
	TypePanel  = "Lnl_Panel"
	TypeReader = "Lnl_Reader"
)

// InstanceParams scope a query against the instances endpoint.
type InstanceParams struct {
	TypeName   string `url:"type_name"`
	PageNumber int    `url:"page_number"`
	PageSize   int    `url:"page_size"`
	OrderBy    string `url:"order_by,omitempty"`
	// Filter is a vendor filter expression, e.g. "panelid = 5".
	Filter string `url:"filter,omitempty"`
}

// Instances retrieves a single page of instances of a particular type.
// Most callers want the aggregated accessors (RetrievePanels,
// RetrieveReaders) instead; this is the raw building block underneath
// them. Requires a signed-in session.
func (c *Client) Instances(ctx context.Context, params InstanceParams) (*Page, error) {
	e, err := c.endpoint("instances", versionInstances).params(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, e.String(), nil)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.doJSON(req, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// instancePages adapts Instances into a paginator over projected
// records for the aggregated accessors.
func instancePages[T any](c *Client, typeName, filter string, project func(Item) (T, error)) paginatorFunc[T] {
	return func(ctx context.Context, page int) ([]T, pageMeta, error) {
		result, err := c.Instances(ctx, InstanceParams{
			TypeName:   typeName,
			PageNumber: page,
			PageSize:   c.pageSize,
			OrderBy:    "name",
			Filter:     filter,
		})
		if err != nil {
			return nil, pageMeta{}, err
		}

		records := make([]T, 0, len(result.Items))
		for _, item := range result.Items {
			record, err := project(item)
			if err != nil {
				return nil, pageMeta{}, err
			}
			records = append(records, record)
		}

		return records, pageMeta{TotalPages: result.TotalPages, Count: result.Count}, nil
	}
}
