package config

import "time"

// Render polling constants
const (
	// RenderPollInterval is the wait between render status probes
	RenderPollInterval = 5 * time.Second

	// RenderPollBudget caps status probes before the wait gives up
	// (20 x 5s, roughly 100 seconds)
	RenderPollBudget = 20
)

// Slideshow timeline constants
const (
	// MaxSlideshowClips limits how many product images become clips
	MaxSlideshowClips = 5

	// ClipSeconds is the on-screen time of each image clip
	ClipSeconds = 3

	// PriceCaptionSeconds is how long the price overlay stays on screen
	PriceCaptionSeconds = 15
)

// Publishing constants
const (
	// TikTokTitleLimit is the platform cap on post titles
	TikTokTitleLimit = 150

	// InstagramProcessingWait is the fixed head start given to the media
	// container before publish is attempted
	InstagramProcessingWait = 30 * time.Second

	// CaptionHashtags is the static tag block appended to every caption
	CaptionHashtags = "#aliexpress #achadinhos #promocao"
)

// OAuth constants
const (
	// VerifierTTL is how long a PKCE verifier stays claimable by state
	VerifierTTL = 10 * time.Minute
)
