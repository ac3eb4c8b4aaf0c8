package catalog

// Document is a decoded gateway response body. The success and error
// envelopes differ per endpoint and are not normalized here; callers walk the
// nested shape defensively with Path.
type Document map[string]any

// Path follows a chain of object keys and returns the value at the end, or
// nil as soon as a hop is missing or not an object.
func (d Document) Path(keys ...string) any {
	var cur any = map[string]any(d)
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[k]
		if !ok {
			return nil
		}
	}
	return cur
}

// ProductList extracts the product array under the given response envelope
// (e.g. "aliexpress_affiliate_product_query_response"). Missing or malformed
// sections yield an empty list.
func (d Document) ProductList(envelope string) []map[string]any {
	v := d.Path(envelope, "resp_result", "result", "products", "product")
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	products := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			products = append(products, m)
		}
	}
	return products
}

// FirstPromotionLink returns the first generated promotion link from a
// link-generate response, or "" when the response carries none.
func (d Document) FirstPromotionLink() string {
	v := d.Path("aliexpress_affiliate_link_generate_response",
		"resp_result", "result", "promotion_links", "promotion_link")
	links, ok := v.([]any)
	if !ok || len(links) == 0 {
		return ""
	}
	link, ok := links[0].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := link["promotion_link"].(string)
	return s
}
