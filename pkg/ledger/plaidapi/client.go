// Package plaidapi implements the ledger.Provider contract against a
// Plaid-style REST API.
package plaidapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/horizonfin/banking/pkg/ledger"
	"github.com/horizonfin/banking/pkg/money"
)

const defaultTimeout = 30 * time.Second

// Client calls the provider's REST endpoints. A bounded timeout is applied
// to every call; a timeout surfaces as a retryable provider error.
type Client struct {
	BaseURL    string
	ClientId   string
	Secret     string
	HTTPClient *http.Client
}

// New creates a Client with the default request timeout.
func New(baseURL, clientId, secret string) *Client {
	return &Client{
		BaseURL:    baseURL,
		ClientId:   clientId,
		Secret:     secret,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Make sure we conform to the interface
var _ ledger.Provider = (*Client)(nil)

type syncRequest struct {
	ClientId    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	Cursor      string `json:"cursor,omitempty"`
}

type accountsRequest struct {
	ClientId    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

type apiError struct {
	ErrorType string `json:"error_type"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"error_message"`
}

type accountsResponse struct {
	Accounts []struct {
		AccountId string `json:"account_id"`
		Name      string `json:"name"`
		Mask      string `json:"mask"`
		Type      string `json:"type"`
		Subtype   string `json:"subtype"`
		Balances  struct {
			Available *decimal.Decimal `json:"available"`
			Current   *decimal.Decimal `json:"current"`
			Limit     *decimal.Decimal `json:"limit"`
			Currency  string           `json:"iso_currency_code"`
		} `json:"balances"`
	} `json:"accounts"`
}

// GetTransactionDeltas fetches one page of transaction deltas.
func (c *Client) GetTransactionDeltas(ctx context.Context, accessToken, cursor string) (*ledger.DeltaPage, error) {
	req := syncRequest{
		ClientId:    c.ClientId,
		Secret:      c.Secret,
		AccessToken: accessToken,
		Cursor:      cursor,
	}

	var page ledger.DeltaPage
	if err := c.post(ctx, "/transactions/sync", req, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetAccounts fetches the account list with current balances.
func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]ledger.Account, error) {
	req := accountsRequest{
		ClientId:    c.ClientId,
		Secret:      c.Secret,
		AccessToken: accessToken,
	}

	var resp accountsResponse
	if err := c.post(ctx, "/accounts/balance/get", req, &resp); err != nil {
		return nil, err
	}

	accounts := make([]ledger.Account, len(resp.Accounts))
	for i, a := range resp.Accounts {
		acct := ledger.Account{
			Id:      a.AccountId,
			Name:    a.Name,
			Mask:    a.Mask,
			Type:    a.Type,
			Subtype: a.Subtype,
		}
		acct.Balances.Currency = a.Balances.Currency
		if a.Balances.Available != nil {
			acct.Balances.AvailableCents = money.ToCents(*a.Balances.Available)
		}
		if a.Balances.Current != nil {
			acct.Balances.CurrentCents = money.ToCents(*a.Balances.Current)
		}
		if a.Balances.Limit != nil {
			acct.Balances.LimitCents = money.ToCents(*a.Balances.Limit)
		}
		accounts[i] = acct
	}

	return accounts, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		// Timeouts and transport failures are retryable: nothing was
		// committed and the cursor is unchanged.
		return &ledger.ProviderError{Code: ledger.CodeInstitutionDown, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return &ledger.ProviderError{
				Code: ledger.CodeUnknown,
				Err:  fmt.Errorf("provider returned status %d", resp.StatusCode),
			}
		}
		return &ledger.ProviderError{
			Code: mapErrorCode(apiErr),
			Err:  fmt.Errorf("%s: %s", apiErr.ErrorCode, apiErr.Message),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ledger.ProviderError{
			Code: ledger.CodeUnknown,
			Err:  fmt.Errorf("failed to decode provider response: %w", err),
		}
	}

	return nil
}

func mapErrorCode(e apiError) ledger.ErrorCode {
	switch e.ErrorCode {
	case "ITEM_LOGIN_REQUIRED":
		return ledger.CodeReauthRequired
	case "RATE_LIMIT_EXCEEDED":
		return ledger.CodeRateLimited
	case "INSTITUTION_DOWN", "INSTITUTION_NOT_RESPONDING":
		return ledger.CodeInstitutionDown
	}
	return ledger.CodeUnknown
}
