package orchestrator

import (
	"fmt"

	"viralagent/types"
)

// NormalizeProduct folds a raw gateway product record into a Product. The
// query and hotproduct endpoints disagree on field names, so every field is
// resolved through an alias chain.
func NormalizeProduct(raw map[string]any) types.Product {
	p := types.Product{
		Title:         str(raw, "product_main_title", "product_title"),
		SalePrice:     str(raw, "target_sale_price", "sale_price", "original_price"),
		MainImageURL:  str(raw, "product_main_image_url"),
		DetailURL:     str(raw, "product_detail_url"),
		PromotionLink: str(raw, "promotion_link"),
		ShortURL:      str(raw, "short_url"),
		ProductID:     str(raw, "product_id"),
	}

	// product_small_image_urls nests the list under a "string" key.
	if imgs, ok := raw["product_small_image_urls"].(map[string]any); ok {
		if list, ok := imgs["string"].([]any); ok {
			for _, item := range list {
				if s, ok := item.(string); ok && s != "" {
					p.ImageURLs = append(p.ImageURLs, s)
				}
			}
		}
	}
	if len(p.ImageURLs) == 0 && p.MainImageURL != "" {
		p.ImageURLs = []string{p.MainImageURL}
	}
	if p.MainImageURL == "" && len(p.ImageURLs) > 0 {
		p.MainImageURL = p.ImageURLs[0]
	}

	return p
}

// str returns the first non-empty alias, stringifying JSON numbers because the
// gateway ships product ids both ways.
func str(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}
