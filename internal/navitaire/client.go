// Package navitaire talks to the airline's NDC seat availability endpoint.
package navitaire

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

// ErrUpstreamStatus is returned when the supplier answers with a non-2xx
// status code.
var ErrUpstreamStatus = errors.New("navitaire: unexpected upstream status")

// Supplier fetches a raw seat availability document for the given
// selector.
type Supplier interface {
	SeatAvailability(ctx context.Context, params model.NDCParams) (*ndc.Node, error)
}

// Client is the HTTP Supplier.
type Client struct {
	endpoint   string
	soapAction string
	settings   Settings
	http       *http.Client
}

// NewClient creates a Client posting to endpoint. A zero timeout falls
// back to 30 seconds.
func NewClient(endpoint, soapAction string, timeout time.Duration, settings Settings) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		soapAction: soapAction,
		settings:   settings,
		http:       &http.Client{Timeout: timeout},
	}
}

// SeatAvailability posts the request and decodes the reply into a tree.
func (c *Client) SeatAvailability(ctx context.Context, params model.NDCParams) (*ndc.Node, error) {
	body, err := BuildRequest(params, c.settings)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("navitaire: new request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	if c.soapAction != "" {
		req.Header.Set("SOAPAction", c.soapAction)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("navitaire: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	doc, err := ndc.Decode(resp.Body)
	if err != nil {
		if errors.Is(err, ndc.ErrEmptyInput) {
			return ndc.NewNode(""), nil
		}
		return nil, fmt.Errorf("navitaire: decode: %w", err)
	}
	return doc, nil
}
