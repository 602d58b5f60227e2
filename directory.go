package openaccess

import (
	"context"
	"net/http"
)

// Directory is an authentication directory a user can sign in against.
type Directory struct {
	ID   string
	Name string
}

const typeDirectory = "Lnl_Directory"

func directoryFromItem(item Item) (Directory, error) {
	id, err := item.stringProp(typeDirectory, "ID")
	if err != nil {
		return Directory{}, err
	}
	name, err := item.stringProp(typeDirectory, "Name")
	if err != nil {
		return Directory{}, err
	}

	return Directory{ID: id, Name: name}, nil
}

// Directories retrieves the directories configured on the service.
// Directory IDs are what [Client.SignIn] expects.
func (c *Client) Directories(ctx context.Context) ([]Directory, error) {
	url := c.endpoint("directories", versionDirectories).String()

	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.doJSON(req, &page); err != nil {
		return nil, err
	}

	directories := make([]Directory, 0, len(page.Items))
	for _, item := range page.Items {
		directory, err := directoryFromItem(item)
		if err != nil {
			return nil, err
		}
		directories = append(directories, directory)
	}

	return directories, nil
}
