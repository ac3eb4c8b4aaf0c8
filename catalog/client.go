package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultGatewayURL = "https://api-sg.aliexpress.com/sync"

// Client issues signed requests to the affiliate catalog gateway.
type Client struct {
	httpClient *http.Client
	gatewayURL string
	appKey     string
	appSecret  string
	trackingID string
	now        func() time.Time
}

// Config carries the catalog credentials. GatewayURL is optional and exists
// mainly so tests can point the client at a local server.
type Config struct {
	AppKey     string
	AppSecret  string
	TrackingID string
	GatewayURL string
}

// NewClient builds a catalog client from explicit configuration.
func NewClient(cfg Config) *Client {
	gw := cfg.GatewayURL
	if gw == "" {
		gw = defaultGatewayURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		gatewayURL: gw,
		appKey:     cfg.AppKey,
		appSecret:  cfg.AppSecret,
		trackingID: cfg.TrackingID,
		now:        time.Now,
	}
}

// NewClientFromEnv builds a catalog client from ALIEXPRESS_APP_KEY,
// ALIEXPRESS_APP_SECRET and ALIEXPRESS_TRACKING_ID. Missing values are not an
// error here; unsigned calls simply fail at the gateway.
func NewClientFromEnv() *Client {
	return NewClient(Config{
		AppKey:     os.Getenv("ALIEXPRESS_APP_KEY"),
		AppSecret:  os.Getenv("ALIEXPRESS_APP_SECRET"),
		TrackingID: os.Getenv("ALIEXPRESS_TRACKING_ID"),
		GatewayURL: os.Getenv("ALIEXPRESS_GATEWAY_URL"),
	})
}

// SearchByKeywords queries affiliate products matching the given keywords.
func (c *Client) SearchByKeywords(ctx context.Context, keywords string) (Document, error) {
	params := c.baseParams("aliexpress.affiliate.product.query")
	params["keywords"] = keywords
	params["page_size"] = "20"
	return c.call(ctx, params)
}

// HotProducts queries the curated hot-product list.
func (c *Client) HotProducts(ctx context.Context) (Document, error) {
	params := c.baseParams("aliexpress.affiliate.hotproduct.query")
	params["page_size"] = "20"
	return c.call(ctx, params)
}

// GenerateAffiliateLinks asks the gateway to wrap the given source URLs into
// tracked promotion links.
func (c *Client) GenerateAffiliateLinks(ctx context.Context, sourceURLs string) (Document, error) {
	params := c.baseParams("aliexpress.affiliate.link.generate")
	params["promotion_link_type"] = "0"
	params["source_values"] = sourceURLs
	params["ship_to_country"] = "BR"
	return c.call(ctx, params)
}

// ProductDetails looks up full product records by comma-separated ids.
func (c *Client) ProductDetails(ctx context.Context, productIDs string) (Document, error) {
	params := c.baseParams("aliexpress.affiliate.productdetail.get")
	params["product_ids"] = productIDs
	params["target_currency"] = "USD"
	params["target_language"] = "EN"
	params["country"] = "BR"
	return c.call(ctx, params)
}

// baseParams returns the shared parameter set every gateway method requires.
// The timestamp is second precision in the gateway's expected layout.
func (c *Client) baseParams(method string) map[string]string {
	return map[string]string{
		"method":      method,
		"app_key":     c.appKey,
		"timestamp":   c.now().UTC().Format("2006-01-02 15:04:05"),
		"format":      "json",
		"v":           "2.0",
		"sign_method": "md5",
		"tracking_id": c.trackingID,
	}
}

// call signs the parameter map, issues the GET, and decodes the body as-is.
func (c *Client) call(ctx context.Context, params map[string]string) (Document, error) {
	params["sign"] = SignParams(params, c.appSecret)

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.gatewayURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog gateway returned status %s", resp.Status)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog response decode failed: %w", err)
	}
	return doc, nil
}
