// Package dwollaapi implements the rail.Rail contract against a
// Dwolla-style REST API.
package dwollaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/horizonfin/banking/pkg/rail"
)

const defaultTimeout = 30 * time.Second

// Client calls the rail's REST endpoints with a bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New creates a Client with the default request timeout.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Make sure we conform to the interface
var _ rail.Rail = (*Client)(nil)

type transferRequest struct {
	Links  map[string]link `json:"_links"`
	Amount amount          `json:"amount"`
}

type link struct {
	Href string `json:"href"`
}

type amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type transferResource struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

// CreateTransfer starts a remote transfer between two funding sources and
// returns the rail's transfer id (taken from the Location header, the
// rail's creation convention).
func (c *Client) CreateTransfer(ctx context.Context, params rail.CreateTransferParams) (string, error) {
	req := transferRequest{
		Links: map[string]link{
			"source":      {Href: c.BaseURL + "/funding-sources/" + params.SourceFundingId},
			"destination": {Href: c.BaseURL + "/funding-sources/" + params.DestinationFundingId},
		},
		Amount: amount{Value: params.Amount, Currency: params.Currency},
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/transfers", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build transfer request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &rail.Error{Op: "create transfer", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", &rail.Error{Op: "create transfer", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", &rail.Error{Op: "create transfer", Err: fmt.Errorf("missing Location header")}
	}

	evt := rail.WebhookEvent{ResourceHref: location}
	return evt.TransferId(), nil
}

// CancelTransfer cancels a remote transfer by posting a cancelled status.
func (c *Client) CancelTransfer(ctx context.Context, railTransferId string) error {
	payload := []byte(`{"status":"cancelled"}`)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/transfers/"+railTransferId, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build cancel request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return &rail.Error{Op: "cancel transfer", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &rail.Error{Op: "cancel transfer", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	return nil
}

// GetTransferStatus reads the rail's current status for a transfer.
func (c *Client) GetTransferStatus(ctx context.Context, railTransferId string) (rail.TransferStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/transfers/"+railTransferId, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build status request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &rail.Error{Op: "get transfer", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &rail.Error{Op: "get transfer", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var resource transferResource
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		return "", &rail.Error{Op: "get transfer", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return rail.TransferStatus(resource.Status), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/vnd.dwolla.v1.hal+json")
}
