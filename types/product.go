package types

// Product is a single catalog item after alias normalization. The affiliate
// gateway uses different field names between its query and hotproduct
// endpoints; the orchestrator folds them into this shape before any video or
// publishing work starts.
type Product struct {
	Title         string   `json:"main_title"`
	SalePrice     string   `json:"sale_price"`
	MainImageURL  string   `json:"main_image_url"`
	ImageURLs     []string `json:"image_urls,omitempty"`
	DetailURL     string   `json:"detail_url"`
	PromotionLink string   `json:"promotion_link,omitempty"`
	ShortURL      string   `json:"short_url,omitempty"`
	ProductID     string   `json:"product_id"`
}

// ProductData is the manually entered product record the studio form feeds to
// the campaign generator. Field names match the catalog API payloads so a raw
// API response can be pasted straight into the form.
type ProductData struct {
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	PriceUSD           string `json:"price_usd"`
	ShippingInfo       string `json:"shipping_info"`
	Rating             string `json:"rating"`
	VideoAssetsURLs    string `json:"video_assets_urls"`
}
