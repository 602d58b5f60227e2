package openaccess

import (
	"context"
	"slices"
)

// Panel is an access-control field controller managing one or more
// readers.
type Panel struct {
	ID   string
	Name string
	// Status is true when the panel reports itself online.
	Status bool
	Type   string
}

// panelFromItem projects a vendor instance item into a Panel.
func panelFromItem(item Item) (Panel, error) {
	id, err := item.stringProp(TypePanel, "ID")
	if err != nil {
		return Panel{}, err
	}
	name, err := item.stringProp(TypePanel, "Name")
	if err != nil {
		return Panel{}, err
	}
	online, err := item.boolProp(TypePanel, "IsOnline")
	if err != nil {
		return Panel{}, err
	}
	panelType, err := item.stringProp(TypePanel, "PanelType")
	if err != nil {
		return Panel{}, err
	}

	return Panel{ID: id, Name: name, Status: online, Type: panelType}, nil
}

// RetrievePanels fetches every page of panels from the service, in the
// server's name order, and replaces the client's cached panel list with
// the result. Requires a signed-in session.
func (c *Client) RetrievePanels(ctx context.Context) ([]Panel, error) {
	panels, err := collect(iterate(ctx, c.maxPages, instancePages(c, TypePanel, "", panelFromItem)))
	if err != nil {
		return nil, err
	}

	c.panelsMU.Lock()
	c.panels = panels
	c.panelsMU.Unlock()

	return panels, nil
}

// Panels returns a snapshot of the panel list cached by the last
// successful RetrievePanels call. It never touches the network; an
// empty slice before the first retrieval is expected. Readers have no
// such cache, see [Client.RetrieveReaders].
func (c *Client) Panels() []Panel {
	c.panelsMU.Lock()
	defer c.panelsMU.Unlock()

	return slices.Clone(c.panels)
}
