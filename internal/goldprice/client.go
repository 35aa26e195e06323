package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// gramsPerTroyOunce is the divisor the upstream feed convention uses to turn
// a per-troy-ounce quote into a per-gram one.
const gramsPerTroyOunce = 28.3495

// Client fetches the spot gold price from an external feed. The feed quotes
// USD per troy ounce; everything downstream of this client works in USD per
// gram.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a spot price client for the given feed URL with a
// bounded request timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SpotPerGram fetches the current spot price and converts it to USD per
// gram. The feed returns an array whose first element carries a numeric
// "price" field; absence or a non-positive value is an error.
func (c *Client) SpotPerGram(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating spot price request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("spot price request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return 0, fmt.Errorf("reading spot price response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("spot price HTTP %d: %s", resp.StatusCode, string(body))
	}

	var entries []struct {
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		return 0, fmt.Errorf("parsing spot price response: %w", err)
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("spot price response is empty")
	}

	perOunce := entries[0].Price
	if perOunce <= 0 {
		return 0, fmt.Errorf("spot price is non-positive: %v", perOunce)
	}

	return perOunce / gramsPerTroyOunce, nil
}
