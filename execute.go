package openaccess

import (
	"context"
	"net/http"
)

type executeMethodRequest struct {
	MethodName string            `json:"method_name"`
	TypeName   string            `json:"type_name"`
	Properties map[string]string `json:"property_value_map"`
	Parameters map[string]string `json:"in_parameter_value_map"`
}

// ExecuteMethod invokes a named method on a specific instance,
// identified by props. A nil params map sends an empty parameter map.
// Requires a signed-in session.
//
// Method execution actuates real-world hardware and is not idempotent:
// an ambiguous failure such as a timeout may or may not have reached
// the panel. The client never retries; callers must not retry blindly
// either.
func (c *Client) ExecuteMethod(ctx context.Context, methodName, typeName string, props, params map[string]string) error {
	if props == nil {
		props = map[string]string{}
	}
	if params == nil {
		params = map[string]string{}
	}

	url := c.endpoint("execute_method", versionExecuteMethod).String()

	req, err := c.newRequest(ctx, http.MethodPost, url, executeMethodRequest{
		MethodName: methodName,
		TypeName:   typeName,
		Properties: props,
		Parameters: params,
	})
	if err != nil {
		return err
	}

	return c.doJSON(req, nil)
}

// OpenDoor momentarily unlocks the door controlled by the given reader.
// See [Client.ExecuteMethod] for the actuation and retry caveats.
func (c *Client) OpenDoor(ctx context.Context, reader Reader) error {
	return c.ExecuteMethod(ctx, "OpenDoor", TypeReader, map[string]string{
		"PanelID":  reader.PanelID,
		"ReaderID": reader.ID,
	}, nil)
}
