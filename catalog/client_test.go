package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	c := NewClient(Config{
		AppKey:     "key",
		AppSecret:  "secret",
		TrackingID: "track",
		GatewayURL: serverURL,
	})
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return c
}

func TestSearchByKeywordsSignsAndDecodes(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"aliexpress_affiliate_product_query_response": {
				"resp_result": {"result": {"products": {"product": [
					{"product_title": "Widget", "sale_price": "9.99"}
				]}}}
			}
		}`))
	}))
	defer srv.Close()

	doc, err := newTestClient(srv.URL).SearchByKeywords(context.Background(), "desk gadgets")
	if err != nil {
		t.Fatalf("SearchByKeywords: %v", err)
	}

	if gotQuery["method"] != "aliexpress.affiliate.product.query" {
		t.Errorf("method = %q", gotQuery["method"])
	}
	if gotQuery["keywords"] != "desk gadgets" {
		t.Errorf("keywords = %q", gotQuery["keywords"])
	}
	if gotQuery["timestamp"] != "2026-01-02 03:04:05" {
		t.Errorf("timestamp = %q", gotQuery["timestamp"])
	}

	// The sign parameter must match a recomputation over the sent params.
	params := map[string]string{}
	for k, v := range gotQuery {
		if k != "sign" {
			params[k] = v
		}
	}
	if want := SignParams(params, "secret"); gotQuery["sign"] != want {
		t.Errorf("sign = %q, want %q", gotQuery["sign"], want)
	}

	products := doc.ProductList("aliexpress_affiliate_product_query_response")
	if len(products) != 1 {
		t.Fatalf("ProductList returned %d products, want 1", len(products))
	}
	if products[0]["product_title"] != "Widget" {
		t.Errorf("product_title = %v", products[0]["product_title"])
	}
}

func TestCallPropagatesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).HotProducts(context.Background()); err == nil {
		t.Fatal("expected an error on non-200 gateway status")
	}
}

func TestFirstPromotionLink(t *testing.T) {
	doc := Document{
		"aliexpress_affiliate_link_generate_response": map[string]any{
			"resp_result": map[string]any{
				"result": map[string]any{
					"promotion_links": map[string]any{
						"promotion_link": []any{
							map[string]any{"promotion_link": "https://s.click.example/abc"},
						},
					},
				},
			},
		},
	}
	if got := doc.FirstPromotionLink(); got != "https://s.click.example/abc" {
		t.Fatalf("FirstPromotionLink = %q", got)
	}

	if got := (Document{}).FirstPromotionLink(); got != "" {
		t.Fatalf("FirstPromotionLink on empty doc = %q, want empty", got)
	}
}

func TestPathStopsOnNonObject(t *testing.T) {
	doc := Document{"a": map[string]any{"b": "leaf"}}
	if v := doc.Path("a", "b"); v != "leaf" {
		t.Errorf("Path(a,b) = %v", v)
	}
	if v := doc.Path("a", "b", "c"); v != nil {
		t.Errorf("Path through a string should be nil, got %v", v)
	}
	if v := doc.Path("missing"); v != nil {
		t.Errorf("Path(missing) = %v, want nil", v)
	}
}
