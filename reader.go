package openaccess

import "context"

// Reader is a card reader attached to a panel, associated with a door.
type Reader struct {
	PanelID  string
	ID       string
	Name     string
	Type     string
	HostName string
}

// readerFromItem projects a vendor instance item into a Reader.
func readerFromItem(item Item) (Reader, error) {
	panelID, err := item.stringProp(TypeReader, "PanelID")
	if err != nil {
		return Reader{}, err
	}
	id, err := item.stringProp(TypeReader, "ReaderID")
	if err != nil {
		return Reader{}, err
	}
	name, err := item.stringProp(TypeReader, "Name")
	if err != nil {
		return Reader{}, err
	}
	controlType, err := item.stringProp(TypeReader, "ControlType")
	if err != nil {
		return Reader{}, err
	}
	hostName, err := item.stringProp(TypeReader, "HostName")
	if err != nil {
		return Reader{}, err
	}

	return Reader{
		PanelID:  panelID,
		ID:       id,
		Name:     name,
		Type:     controlType,
		HostName: hostName,
	}, nil
}

// RetrieveReaders fetches every page of readers attached to the given
// panel, in the server's name order. Unlike panels, reader lists are
// never cached on the client; each call hits the service. Requires a
// signed-in session.
func (c *Client) RetrieveReaders(ctx context.Context, panelID string) ([]Reader, error) {
	filter := "panelid = " + panelID

	return collect(iterate(ctx, c.maxPages, instancePages(c, TypeReader, filter, readerFromItem)))
}
