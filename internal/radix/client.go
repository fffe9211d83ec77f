package radix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Client talks to the Radix Gateway API. Every call is a single HTTPS POST
// with a JSON body; reads are side-effect free and independently retryable.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client. Pass "" for the mainnet default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultGatewayURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// post sends a JSON payload and decodes the response into out, retrying
// rate-limit (429) responses and transport errors with exponential backoff.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			delay := RetryBaseDelay * (1 << (attempt - 1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "CorvaxLab Game/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("gateway rate limited: %s", resp.Status)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return fmt.Errorf("gateway error: %s - %s", resp.Status, string(msg))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		return err
	}
	return lastErr
}

// CurrentLedgerState fetches the gateway's current ledger state, echoed back
// on paginated queries to keep pages consistent.
func (c *Client) CurrentLedgerState(ctx context.Context) (json.RawMessage, error) {
	var out struct {
		LedgerState json.RawMessage `json:"ledger_state"`
	}
	if err := c.post(ctx, "/status/current", struct{}{}, &out); err != nil {
		return nil, err
	}
	return out.LedgerState, nil
}

type fungibleItem struct {
	ResourceAddress string `json:"resource_address"`
	Amount          string `json:"amount"`
}

type fungiblesPage struct {
	TotalCount int            `json:"total_count"`
	NextCursor string         `json:"next_cursor"`
	Items      []fungibleItem `json:"items"`
}

// FungibleBalances returns the account's fungible balances keyed by resource
// address, following pagination to the end.
func (c *Client) FungibleBalances(ctx context.Context, account string) (map[string]float64, error) {
	balances := make(map[string]float64)
	cursor := ""

	for {
		payload := map[string]any{
			"address":        account,
			"limit_per_page": PageLimit,
		}
		if cursor != "" {
			payload["cursor"] = cursor
		}

		var page fungiblesPage
		if err := c.post(ctx, "/state/entity/page/fungibles/", payload, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			amount, err := strconv.ParseFloat(item.Amount, 64)
			if err != nil {
				continue
			}
			balances[item.ResourceAddress] = amount
		}

		cursor = page.NextCursor
		if cursor == "" {
			break
		}
	}
	return balances, nil
}

// TokenBalance returns the account's balance of one resource address.
func (c *Client) TokenBalance(ctx context.Context, account, resource string) (float64, error) {
	balances, err := c.FungibleBalances(ctx, account)
	if err != nil {
		return 0, err
	}
	return balances[resource], nil
}

type nonFungiblesPage struct {
	NextCursor string `json:"next_cursor"`
	Items      []struct {
		NonFungibleIDs []string `json:"non_fungible_ids"`
	} `json:"items"`
}

// NonFungibleIDs enumerates the account's NFT local ids for one resource,
// pinned to a single ledger state across pages.
func (c *Client) NonFungibleIDs(ctx context.Context, account, resource string) ([]string, error) {
	ledgerState, err := c.CurrentLedgerState(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	cursor := ""

	for {
		payload := map[string]any{
			"address":           account,
			"resource_address":  resource,
			"at_ledger_state":   ledgerState,
			"aggregation_level": "Global",
			"opt_ins": map[string]bool{
				"non_fungible_include_nfids": true,
			},
			"limit_per_page": PageLimit,
		}
		if cursor != "" {
			payload["cursor"] = cursor
		}

		var page nonFungiblesPage
		if err := c.post(ctx, "/state/entity/page/non-fungibles/", payload, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			ids = append(ids, item.NonFungibleIDs...)
		}

		cursor = page.NextCursor
		if cursor == "" {
			break
		}
	}
	return ids, nil
}

type nonFungibleDataResponse struct {
	NonFungibleIDs []struct {
		NonFungibleID string          `json:"non_fungible_id"`
		Data          json.RawMessage `json:"data"`
	} `json:"non_fungible_ids"`
}

// NonFungibleData fetches on-ledger data for the given NFT ids, batching to
// the gateway's per-request limit.
func (c *Client) NonFungibleData(ctx context.Context, resource string, ids []string) (map[string]json.RawMessage, error) {
	if len(ids) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	ledgerState, err := c.CurrentLedgerState(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]json.RawMessage, len(ids))
	for start := 0; start < len(ids); start += NFTDataBatchSize {
		end := start + NFTDataBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		payload := map[string]any{
			"resource_address": resource,
			"non_fungible_ids": ids[start:end],
			"at_ledger_state":  ledgerState,
		}

		var out nonFungibleDataResponse
		if err := c.post(ctx, "/state/non-fungible/data", payload, &out); err != nil {
			return nil, err
		}
		for _, item := range out.NonFungibleIDs {
			result[item.NonFungibleID] = item.Data
		}
	}
	return result, nil
}

// TransactionStatus is the gateway's view of a submitted intent.
type TransactionStatus struct {
	Status       string `json:"status"`
	IntentStatus string `json:"intent_status"`
	ErrorMessage string `json:"error_message"`
}

// GetTransactionStatus polls one intent hash.
func (c *Client) GetTransactionStatus(ctx context.Context, intentHash string) (*TransactionStatus, error) {
	var out TransactionStatus
	payload := map[string]string{"intent_hash": intentHash}
	if err := c.post(ctx, "/transaction/status", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NonFungibleChange describes NFTs moved by a committed transaction.
type NonFungibleChange struct {
	ResourceAddress string   `json:"resource_address"`
	Operation       string   `json:"operation"`
	NonFungibleIDs  []string `json:"non_fungible_ids"`
}

// CommittedDetails returns the non-fungible balance changes of a committed
// transaction.
func (c *Client) CommittedDetails(ctx context.Context, intentHash string) ([]NonFungibleChange, error) {
	payload := map[string]any{
		"intent_hash": intentHash,
		"opt_ins": map[string]bool{
			"balance_changes":      true,
			"non_fungible_changes": true,
		},
	}

	var out struct {
		NonFungibleChanges []NonFungibleChange `json:"non_fungible_changes"`
	}
	if err := c.post(ctx, "/transaction/committed-details", payload, &out); err != nil {
		return nil, err
	}
	return out.NonFungibleChanges, nil
}
