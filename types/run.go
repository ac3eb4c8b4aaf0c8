package types

import "time"

// RunSummary is the terminal record of one automation cycle. Per-platform
// booleans are independent: partial publishing success is a valid outcome.
type RunSummary struct {
	RunID         string    `json:"run_id"`
	Niche         string    `json:"niche"`
	Product       string    `json:"product"`
	Price         string    `json:"price"`
	AffiliateLink string    `json:"affiliate_link"`
	VideoURL      string    `json:"video_url"`
	TikTok        bool      `json:"tiktok"`
	Instagram     bool      `json:"instagram"`
	CompletedAt   time.Time `json:"completed_at"`
}

// RunRequest is a queued request for an automation run, consumed by the
// worker from the run-requests topic.
type RunRequest struct {
	RequestedBy string `json:"requested_by,omitempty"`
}
