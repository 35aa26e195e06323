package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aurumworks/showcase/internal/domain"
)

// Client fetches product records from the remote catalog API.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given endpoint URL with a
// bounded request timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProducts fetches the catalog. An empty catalog is treated as an
// error so the caller falls through to the built-in list.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog HTTP %d: %s", resp.StatusCode, string(body))
	}

	var products []domain.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog response: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog response is empty")
	}

	for _, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog record without a name")
		}
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("catalog record %q has no images", p.Name)
		}
	}

	return products, nil
}
