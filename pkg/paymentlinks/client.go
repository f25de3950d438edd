package paymentlinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/purrify/pricing_api/internal/utils"
)

// Client is a minimal HTTP client for the payment-link registry, the
// external service that owns the mapping from link keys (e.g.
// "quarterly_purrify-50g") to Stripe-hosted checkout URLs. This service
// only resolves keys; it never constructs or validates the URLs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secret     string
}

// NewClient constructs a registry client with sane defaults.
func NewClient(baseURL, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		secret:     secret,
	}
}

// Resolve looks up the checkout URL for a link key. A key the registry does
// not know yields utils.ErrPaymentLinkMissing.
func (c *Client) Resolve(ctx context.Context, key string) (string, error) {
	var resp LinkResponse
	if err := c.doRequest(ctx, "/v1/links/"+url.PathEscape(key), &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", utils.ErrPaymentLinkMissing
	}
	return resp.URL, nil
}

// ResolveAll fetches the full registry, used by the warmup worker to prime
// the cache.
func (c *Client) ResolveAll(ctx context.Context) (map[string]string, error) {
	var resp LinkListResponse
	if err := c.doRequest(ctx, "/v1/links", &resp); err != nil {
		return nil, err
	}
	links := make(map[string]string, len(resp.Links))
	for _, l := range resp.Links {
		links[l.Key] = l.URL
	}
	return links, nil
}

// doRequest performs a signed GET against the registry and decodes the JSON
// response into out.
func (c *Client) doRequest(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Signature", utils.SignPayload([]byte(path), c.secret))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read registry response: %w", err)
	}

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("payment-link registry request")

	if resp.StatusCode == http.StatusNotFound {
		return utils.ErrPaymentLinkMissing
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode registry response: %w", err)
	}
	return nil
}
