package openaccess

import (
	"context"
	"net/http"
)

// Cardholder is a person record with associated credentials.
type Cardholder struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

const typeCardholder = "Lnl_Cardholder"

// CardholderParams scope a query against the cardholders endpoint.
type CardholderParams struct {
	// AutoLoadBadge asks the server to include badge data with each
	// cardholder.
	AutoLoadBadge bool `url:"auto_load_badge,omitempty"`
	// CardholderFilter is a vendor filter expression over cardholder
	// properties.
	CardholderFilter string `url:"cardholder_filter,omitempty"`
	// BadgesFilter is a vendor filter expression over badge properties.
	BadgesFilter string `url:"badges_filter,omitempty"`
}

// cardholderFromItem projects a vendor item into a Cardholder. Email is
// optional on the vendor side and projects to empty when absent.
func cardholderFromItem(item Item) (Cardholder, error) {
	id, err := item.stringProp(typeCardholder, "ID")
	if err != nil {
		return Cardholder{}, err
	}
	firstName, err := item.stringProp(typeCardholder, "FirstName")
	if err != nil {
		return Cardholder{}, err
	}
	lastName, err := item.stringProp(typeCardholder, "LastName")
	if err != nil {
		return Cardholder{}, err
	}

	email, _ := item.stringProp(typeCardholder, "Email")

	return Cardholder{ID: id, FirstName: firstName, LastName: lastName, Email: email}, nil
}

// Cardholders retrieves cardholders matching the given filters.
// Requires a signed-in session.
func (c *Client) Cardholders(ctx context.Context, params CardholderParams) ([]Cardholder, error) {
	e, err := c.endpoint("cardholders", versionCardholders).params(params)
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

	cardholders := make([]Cardholder, 0, len(page.Items))
	for _, item := range page.Items {
		cardholder, err := cardholderFromItem(item)
		if err != nil {
			return nil, err
		}
		cardholders = append(cardholders, cardholder)
	}

	return cardholders, nil
}
